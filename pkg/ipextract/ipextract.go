// Package ipextract finds IPv4 addresses in free form text,
// such as the body of a plaintext "what is my IP" response.
package ipextract

import (
	"net/netip"
	"strings"
)

// IPv4 returns the distinct IPv4 addresses found in text, in their
// order of appearance. Addresses must be delimited by characters
// other than digits and dots.
func IPv4(text string) (addresses []netip.Addr) {
	fields := strings.FieldsFunc(text, isNotIPv4Rune)
	seen := make(map[netip.Addr]struct{}, len(fields))
	for _, field := range fields {
		address, err := netip.ParseAddr(field)
		if err != nil || !address.Is4() {
			continue
		}

		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}
	return addresses
}

func isNotIPv4Rune(r rune) bool {
	return r != '.' && (r < '0' || r > '9')
}
