package fixture

import (
	"fmt"

	"github.com/bashhack/qrforge/internal/constants"
	"github.com/bashhack/qrforge/internal/qrlogin"
)

// recordGenerator renders a login record after applying one deliberate
// mutation. All five standard fixtures share this shape; only the
// mutation differs.
type recordGenerator struct {
	name        string
	title       string
	description string
	mutate      func(*qrlogin.Record)
}

func (g *recordGenerator) Name() string        { return g.name }
func (g *recordGenerator) Title() string       { return g.title }
func (g *recordGenerator) Description() string { return g.description }

func (g *recordGenerator) Generate(p Params) (Fixture, error) {
	rec := qrlogin.New(p.options()...)
	if g.mutate != nil {
		g.mutate(&rec)
	}

	payload, err := qrlogin.MarshalIndent(rec)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to render %s fixture: %w", g.name, err)
	}

	return Fixture{Name: g.name, Title: g.title, Payload: payload}, nil
}

// DefaultRegistry returns the five login fixtures in the order the test
// sheet prints them
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(&recordGenerator{
		name:        "valid",
		title:       "Valid QR login payload (5 minute validity)",
		description: "Fresh payload the scanner should accept",
	})

	r.Register(&recordGenerator{
		name:        "expired",
		title:       "Expired QR login payload",
		description: "Timestamp backdated six minutes to trip the freshness check",
		mutate: func(rec *qrlogin.Record) {
			rec.Timestamp -= constants.ExpiredSkew.Milliseconds()
		},
	})

	r.Register(&recordGenerator{
		name:        "wrong-type",
		title:       "Wrong payload type",
		description: "Type tag from another app to trip the type check",
		mutate: func(rec *qrlogin.Record) {
			rec.Type = constants.WrongPayloadType
		},
	})

	r.Register(&recordGenerator{
		name:        "missing-fields",
		title:       "Payload missing required fields",
		description: "appToken and clientToken removed to trip the field check",
		mutate: func(rec *qrlogin.Record) {
			rec.Data.AppToken = ""
			rec.Data.ClientToken = ""
		},
	})

	r.Register(&recordGenerator{
		name:        "invalid-token",
		title:       "Payload with invalid tokens",
		description: "Token strings the Gotify server will reject",
		mutate: func(rec *qrlogin.Record) {
			rec.Data.AppToken = constants.InvalidAppToken
			rec.Data.ClientToken = constants.InvalidClientToken
		},
	})

	return r
}
