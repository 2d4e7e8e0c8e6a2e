package geolocation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_offline_get_badInput(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		provider provider
		ip       string
		err      error
	}{
		"maxmind own IP": {
			provider: &maxMind{timeNow: time.Now},
			err: errors.New("looking up the caller IP address is not supported: " +
				"with the MaxMind database"),
		},
		"maxmind malformed IP": {
			provider: &maxMind{timeNow: time.Now},
			ip:       "abc",
			err:      errors.New("IP address malformed: abc"),
		},
		"ip2location own IP": {
			provider: &ip2Location{},
			err: errors.New("looking up the caller IP address is not supported: " +
				"with the IP2Location database"),
		},
		"ip2location malformed IP": {
			provider: &ip2Location{},
			ip:       "1.2.3",
			err:      errors.New("IP address malformed: 1.2.3"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			payload, err := testCase.provider.get(context.Background(), testCase.ip)

			require.Error(t, err)
			assert.Equal(t, testCase.err.Error(), err.Error())
			assert.Equal(t, Payload{}, payload)
		})
	}
}

func Test_ip2LocationField(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value    string
		expected string
	}{
		"empty":       {},
		"dash":        {value: "-"},
		"unavailable": {value: "This parameter is unavailable for selected data file. Please upgrade the data file."},
		"invalid":     {value: "Invalid IP address."},
		"value":       {value: "Brooklyn", expected: "Brooklyn"},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, ip2LocationField(testCase.value))
		})
	}
}
