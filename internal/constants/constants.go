package constants

import (
	"time"
)

const (
	// PayloadVersion is the wire version the Droplink scanner accepts
	PayloadVersion = "1.0"

	// PayloadType tags a payload as a Droplink QR login request
	PayloadType = "droplink_qr_login"

	// WrongPayloadType is the tag used by the wrong-type fixture
	WrongPayloadType = "other_app_qr_code"

	DefaultServerURL   = "http://111.228.1.24:2345"
	DefaultAppToken    = "A1B2C3D4E5F6G7H8"
	DefaultClientToken = "X9Y8Z7W6V5U4T3S2"
	DefaultServerName  = "Droplink Test Server"

	InvalidAppToken    = "INVALID_APP_TOKEN"
	InvalidClientToken = "INVALID_CLIENT_TOKEN"
)

const (
	// ValidityWindow is how long the scanner treats a payload as fresh
	ValidityWindow = 5 * time.Minute

	// ExpiredSkew is how far the expired fixture backdates its timestamp;
	// it must exceed ValidityWindow or the fixture would still scan as fresh
	ExpiredSkew = 6 * time.Minute

	// FutureSkew is the clock drift tolerated before a timestamp is rejected
	FutureSkew = time.Minute
)
