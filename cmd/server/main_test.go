package main

import (
	"os"
	"testing"

	"github.com/iskender/paycore/internal/infrastructure/config"
	"github.com/iskender/paycore/internal/infrastructure/kafka"
	"github.com/iskender/paycore/internal/infrastructure/outbox"
)

func TestResolveMigrationsPath(t *testing.T) {
	orig := os.Getenv("MIGRATIONS_PATH")
	defer os.Setenv("MIGRATIONS_PATH", orig)

	os.Unsetenv("MIGRATIONS_PATH")
	if got := resolveMigrationsPath(); got != "migrations" {
		t.Fatalf("expected default path migrations, got %s", got)
	}

	os.Setenv("MIGRATIONS_PATH", "/srv/migrations")
	if got := resolveMigrationsPath(); got != "/srv/migrations" {
		t.Fatalf("expected overridden path, got %s", got)
	}
}

func TestSelectPublisher(t *testing.T) {
	if _, ok := selectPublisher(&config.Config{}).(*outbox.LogPublisher); !ok {
		t.Fatal("expected log publisher without brokers")
	}

	if _, ok := selectPublisher(&config.Config{KafkaBrokers: []string{""}}).(*outbox.LogPublisher); !ok {
		t.Fatal("expected log publisher for blank broker list")
	}

	if _, ok := selectPublisher(&config.Config{KafkaBrokers: []string{"localhost:9092"}}).(*kafka.Publisher); !ok {
		t.Fatal("expected kafka publisher with brokers configured")
	}
}
