package dns

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidateProvider(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		provider Provider
		err      error
	}{
		"valid provider": {
			provider: Cloudflare,
		},
		"invalid provider": {
			provider: Provider("invalid"),
			err:      errors.New("unknown public IP echo DNS provider: invalid"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateProvider(testCase.provider)
			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_data(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		provider     Provider
		data         providerData
		panicMessage string
	}{
		"cloudflare": {
			provider: Cloudflare,
			data: providerData{
				IPv4:    netip.AddrFrom4([4]byte{1, 1, 1, 1}),
				TLSName: "cloudflare-dns.com",
				fqdn:    "whoami.cloudflare.",
				class:   dns.ClassCHAOS,
				qType:   dns.Type(dns.TypeTXT),
			},
		},
		"opendns": {
			provider: OpenDNS,
			data: providerData{
				IPv4:    netip.AddrFrom4([4]byte{208, 67, 222, 222}),
				TLSName: "dns.opendns.com",
				fqdn:    "myip.opendns.com.",
				class:   dns.ClassINET,
				qType:   dns.Type(dns.TypeA),
			},
		},
		"invalid provider": {
			provider:     Provider("invalid"),
			panicMessage: `no data for DNS echo provider "invalid"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if testCase.panicMessage != "" {
				assert.PanicsWithValue(t, testCase.panicMessage, func() {
					testCase.provider.data()
				})
				return
			}
			data := testCase.provider.data()
			assert.Equal(t, testCase.data, data)
		})
	}
}
