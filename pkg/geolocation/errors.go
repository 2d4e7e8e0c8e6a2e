package geolocation

import "errors"

var (
	ErrInvalidIPFormat  = errors.New("invalid IP address format")
	ErrInvalidAPIKey    = errors.New("API key is invalid")
	ErrAccessDenied     = errors.New("API access denied or quota exceeded")
	ErrBadHTTPStatus    = errors.New("bad HTTP status received")
	ErrAPI              = errors.New("API returned an error")
	ErrAPIKeyMissing    = errors.New("API key is missing")
	ErrIPMalformed      = errors.New("IP address malformed")
	ErrIPNotFound       = errors.New("IP address not found in database")
	ErrOwnIPUnsupported = errors.New("looking up the caller IP address is not supported")
	ErrPathMissing      = errors.New("database file path is missing")
)
