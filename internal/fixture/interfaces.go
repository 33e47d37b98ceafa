package fixture

import (
	"github.com/bashhack/qrforge/internal/qrlogin"
)

// Fixture is one renderable QR payload
type Fixture struct {
	Name    string // stable identifier (valid, expired, ...)
	Title   string // banner title shown above the payload
	Payload []byte // exact text to embed in a QR code
}

// Generator defines the interface that all fixture variants implement
type Generator interface {
	// Name returns the stable identifier used with --variant
	Name() string

	// Title returns the banner title printed above the payload
	Title() string

	// Description returns a human-readable description of what the
	// fixture exercises in the scanning app
	Description() string

	// Generate produces the fixture for the given override parameters
	Generate(p Params) (Fixture, error)
}

// Params carries the override values shared by all generators. Empty
// fields fall back to the sample constants.
type Params struct {
	ServerURL   string
	AppToken    string
	ClientToken string
	ServerName  string

	// Seed, when set, makes generators that produce fresh material
	// (e.g. the foreign otpauth fixture) deterministic
	Seed string
}

// options converts the params to record builder options, skipping empties
func (p Params) options() []qrlogin.Option {
	var opts []qrlogin.Option
	if p.ServerURL != "" {
		opts = append(opts, qrlogin.WithServerURL(p.ServerURL))
	}
	if p.AppToken != "" {
		opts = append(opts, qrlogin.WithAppToken(p.AppToken))
	}
	if p.ClientToken != "" {
		opts = append(opts, qrlogin.WithClientToken(p.ClientToken))
	}
	if p.ServerName != "" {
		opts = append(opts, qrlogin.WithServerName(p.ServerName))
	}
	return opts
}
