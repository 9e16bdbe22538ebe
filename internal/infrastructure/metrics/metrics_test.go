package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersRegistered(t *testing.T) {
	if TransfersExecuted == nil || OutboxPublishFailures == nil || HTTPRequests == nil {
		t.Fatalf("expected package metrics to be initialized")
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(families) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestOutboxCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(OutboxPublishFailures)
	OutboxPublishFailures.Inc()

	if got := testutil.ToFloat64(OutboxPublishFailures); got != before+1 {
		t.Fatalf("expected counter to increment, got %v -> %v", before, got)
	}
}
