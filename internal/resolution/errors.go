package resolution

import "errors"

var (
	ErrDomainNotSupported = errors.New("domain names cannot be geolocated")
	ErrQueryInvalid       = errors.New("query is neither an IPv4 address nor a domain name")
)
