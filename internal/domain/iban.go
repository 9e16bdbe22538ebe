package domain

import (
	"math/rand"
	"strings"
)

// DefaultIBANCountry is the country prefix used for generated IBANs.
const DefaultIBANCountry = "TR"

// GenerateIBAN generates a structured IBAN: the country prefix
// followed by 24 random digits. Uniqueness is enforced by the account
// store, not here.
func GenerateIBAN(country string) string {
	var b strings.Builder
	b.Grow(IBANLength)
	b.WriteString(country)

	for i := 0; i < IBANLength-len(country); i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}

	return b.String()
}
