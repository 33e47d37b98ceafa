package fixture

import (
	"fmt"

	"github.com/pquerna/otp/totp"

	"github.com/bashhack/qrforge/internal/token"
)

// ForeignName is the registry name of the non-Droplink fixture
const ForeignName = "foreign"

// foreignGenerator emits a genuine third-party QR payload (an otpauth
// TOTP enrollment URL) so the scanner's "not a login code" path can be
// exercised with realistic content instead of a mangled type tag
type foreignGenerator struct{}

func (foreignGenerator) Name() string  { return ForeignName }
func (foreignGenerator) Title() string { return "Foreign QR payload (otpauth enrollment)" }
func (foreignGenerator) Description() string {
	return "A non-Droplink QR code the scanner must reject outright"
}

func (g foreignGenerator) Generate(p Params) (Fixture, error) {
	opts := totp.GenerateOpts{
		Issuer:      "Example",
		AccountName: "tester@example.com",
	}
	if p.Seed != "" {
		opts.Secret = token.Seed(p.Seed, ForeignName)
	}

	key, err := totp.Generate(opts)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to generate otpauth key: %w", err)
	}

	return Fixture{
		Name:    ForeignName,
		Title:   g.Title(),
		Payload: []byte(key.String()),
	}, nil
}

// WithForeign appends the foreign fixture to a registry
func WithForeign(r *Registry) *Registry {
	r.Register(foreignGenerator{})
	return r
}
