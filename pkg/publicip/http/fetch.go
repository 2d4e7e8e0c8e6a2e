package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/qdm12/ip-tracker/pkg/ipextract"
)

var (
	ErrBanned        = errors.New("banned")
	ErrBadHTTPStatus = errors.New("bad HTTP status received")
	ErrNoIPFound     = errors.New("no IP address found")
	ErrTooManyIPs    = errors.New("too many IP addresses")
	ErrIPMalformed   = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client *http.Client, url string) (
	publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return netip.Addr{}, err
	}

	response, err := client.Do(request)
	if err != nil {
		return netip.Addr{}, err
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return netip.Addr{}, err
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusTooManyRequests:
		return netip.Addr{}, fmt.Errorf("%w: %d (%s)", ErrBanned,
			response.StatusCode, singleLine(string(b)))
	default:
		return netip.Addr{}, fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode),
			singleLine(string(b)))
	}

	ipString, ok := ipFromJSON(b)
	if !ok {
		addresses := ipextract.IPv4(string(b))
		switch len(addresses) {
		case 0:
			return netip.Addr{}, fmt.Errorf("%w: from %q", ErrNoIPFound, url)
		case 1:
			return addresses[0], nil
		default:
			return netip.Addr{}, fmt.Errorf("%w: found %d IPv4 addresses instead of 1",
				ErrTooManyIPs, len(addresses))
		}
	}

	publicIP, err = netip.ParseAddr(ipString)
	if err != nil || !publicIP.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrIPMalformed, ipString)
	}

	return publicIP, nil
}

// ipFromJSON returns the value of the "ip" field if the body
// is a JSON object containing it.
func ipFromJSON(b []byte) (ip string, ok bool) {
	var data struct {
		IP string `json:"ip"`
	}
	err := json.Unmarshal(b, &data)
	if err != nil || data.IP == "" {
		return "", false
	}
	return data.IP, true
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}
