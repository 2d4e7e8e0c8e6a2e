// Package query classifies raw lookup queries typed by the user.
package query

import (
	"regexp"
	"strings"
)

var ipv4Regex = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`) //nolint:lll

// IsValidIP returns true if s is a dotted-decimal IPv4 address
// with four octets in the range [0, 255].
func IsValidIP(s string) bool {
	return ipv4Regex.MatchString(s)
}

// IsValidDomain returns true if s looks like a domain name.
// This is a loose heuristic and not a domain name grammar check:
// any string longer than 3 characters and containing a dot matches.
func IsValidDomain(s string) bool {
	const minLength = 4
	return strings.Contains(s, ".") && len(s) >= minLength
}

type Kind uint8

const (
	Empty Kind = iota
	IPv4
	Domain
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case IPv4:
		return "ipv4"
	case Domain:
		return "domain"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Classify returns the kind of the query given. The query should
// already be trimmed of surrounding spaces. IPv4 addresses are checked
// before domain names since they also satisfy the domain heuristic.
func Classify(s string) Kind {
	switch {
	case s == "":
		return Empty
	case IsValidIP(s):
		return IPv4
	case IsValidDomain(s):
		return Domain
	default:
		return Invalid
	}
}
