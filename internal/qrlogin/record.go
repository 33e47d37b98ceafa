package qrlogin

import (
	"encoding/json"
	"time"

	"github.com/bashhack/qrforge/internal/constants"
)

// nowMillis returns the current wall clock in epoch milliseconds.
// Variable so tests can pin the clock.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Data is the nested credential block of a login payload.
// Token fields carry omitempty so the missing-fields fixture can drop
// them from the wire form by clearing them.
type Data struct {
	GotifyServerURL string `json:"gotifyServerUrl,omitempty"`
	AppToken        string `json:"appToken,omitempty"`
	ClientToken     string `json:"clientToken,omitempty"`
	ServerName      string `json:"serverName,omitempty"`
}

// Record is the full QR login payload the Droplink app scans
type Record struct {
	Version   string `json:"version"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Data      Data   `json:"data"`
}

// Option overrides one field of a freshly built record
type Option func(*Record)

// WithServerURL overrides the Gotify server URL
func WithServerURL(url string) Option {
	return func(r *Record) { r.Data.GotifyServerURL = url }
}

// WithAppToken overrides the app token
func WithAppToken(token string) Option {
	return func(r *Record) { r.Data.AppToken = token }
}

// WithClientToken overrides the client token
func WithClientToken(token string) Option {
	return func(r *Record) { r.Data.ClientToken = token }
}

// WithServerName overrides the human-readable server name
func WithServerName(name string) Option {
	return func(r *Record) { r.Data.ServerName = name }
}

// New builds a record with the sample defaults and the current timestamp
func New(opts ...Option) Record {
	r := Record{
		Version:   constants.PayloadVersion,
		Type:      constants.PayloadType,
		Timestamp: nowMillis(),
		Data: Data{
			GotifyServerURL: constants.DefaultServerURL,
			AppToken:        constants.DefaultAppToken,
			ClientToken:     constants.DefaultClientToken,
			ServerName:      constants.DefaultServerName,
		},
	}

	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// MarshalIndent renders the record exactly as it should appear inside a
// QR code: two-space indented JSON, keys in declaration order
func MarshalIndent(r Record) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
