package ipextract

import (
	"math/rand"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_IPv4(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		text      string
		extracted []netip.Addr
	}{
		"empty": {},
		"one_ipv4": {
			text:      "1.2.3.4\n",
			extracted: []netip.Addr{netip.MustParseAddr("1.2.3.4")},
		},
		"json_body": {
			text:      `{"ip":"203.0.113.7","country":"US"}`,
			extracted: []netip.Addr{netip.MustParseAddr("203.0.113.7")},
		},
		"garbage_around": {
			text: " 1.2.3.4 x.x.2.2 5.6.7.8.9 10.11.12.13 256.1.1.1",
			extracted: []netip.Addr{
				netip.MustParseAddr("1.2.3.4"),
				netip.MustParseAddr("10.11.12.13"),
			},
		},
		"duplicates": {
			text:      "Your IP is 1.2.3.4 (1.2.3.4)",
			extracted: []netip.Addr{netip.MustParseAddr("1.2.3.4")},
		},
		"ipv6_ignored": {
			text: "2001:db8::1",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			extracted := IPv4(testCase.text)

			assert.Equal(t, testCase.extracted, extracted)
		})
	}
}

func Fuzz_IPv4(f *testing.F) {
	f.Fuzz(func(t *testing.T, ipv4A, ipv4B []byte, garbageA, garbageB string) {
		var arrayA, arrayB [4]byte
		copy(arrayA[:], ipv4A)
		copy(arrayB[:], ipv4B)

		text := garbageA +
			netip.AddrFrom4(arrayA).String() +
			garbageB +
			netip.AddrFrom4(arrayB).String() +
			garbageA

		for _, address := range IPv4(text) {
			if !address.Is4() {
				t.Errorf("extracted address %s is not IPv4", address)
			}
		}
	})
}

func Benchmark_IPv4(b *testing.B) {
	generator := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	text := "garbage " +
		generateIPv4(generator) +
		" 999.1.1.1 " +
		generateIPv4(generator) +
		"::1" +
		generateIPv4(generator) +
		" fac00"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IPv4(text)
	}
}

func generateIPv4(generator *rand.Rand) string {
	var ipv4 [4]byte
	_, _ = generator.Read(ipv4[:])
	return netip.AddrFrom4(ipv4).String()
}
