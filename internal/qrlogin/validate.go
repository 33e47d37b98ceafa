package qrlogin

import (
	"fmt"
	"strings"
	"time"

	"github.com/bashhack/qrforge/internal/constants"
)

// tokenShape reports whether s looks like an opaque Gotify token:
// 8 to 64 characters, alphanumeric only
func tokenShape(s string) bool {
	if len(s) < 8 || len(s) > 64 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// Validate applies the same checks the Droplink scanner applies to a
// scanned payload. Each broken fixture variant should fail exactly one
// of these checks.
func Validate(r Record) error {
	if r.Version != constants.PayloadVersion {
		return fmt.Errorf("unsupported payload version %q, want %q", r.Version, constants.PayloadVersion)
	}

	if r.Type != constants.PayloadType {
		return fmt.Errorf("not a login payload: type is %q", r.Type)
	}

	now := nowMillis()
	if age := now - r.Timestamp; age > constants.ValidityWindow.Milliseconds() {
		return fmt.Errorf("payload expired: generated %s ago", time.Duration(age)*time.Millisecond)
	}
	if drift := r.Timestamp - now; drift > constants.FutureSkew.Milliseconds() {
		return fmt.Errorf("payload timestamp is %s in the future", time.Duration(drift)*time.Millisecond)
	}

	var missing []string
	if r.Data.GotifyServerURL == "" {
		missing = append(missing, "gotifyServerUrl")
	}
	if r.Data.AppToken == "" {
		missing = append(missing, "appToken")
	}
	if r.Data.ClientToken == "" {
		missing = append(missing, "clientToken")
	}
	if r.Data.ServerName == "" {
		missing = append(missing, "serverName")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !tokenShape(r.Data.AppToken) {
		return fmt.Errorf("appToken %q is not a valid token", r.Data.AppToken)
	}
	if !tokenShape(r.Data.ClientToken) {
		return fmt.Errorf("clientToken %q is not a valid token", r.Data.ClientToken)
	}

	return nil
}
