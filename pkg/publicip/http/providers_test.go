package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Provider_url(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		provider Provider
		url      string
	}{
		"ipify": {
			provider: Ipify,
			url:      "https://api.ipify.org?format=json",
		},
		"icanhazip": {
			provider: Icanhazip,
			url:      "https://ipv4.icanhazip.com",
		},
		"custom": {
			provider: Provider("url:https://example.com/ip"),
			url:      "https://example.com/ip",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			url := testCase.provider.url()

			assert.Equal(t, testCase.url, url)
		})
	}
}

func Test_CustomProvider(t *testing.T) {
	t.Parallel()

	u := &url.URL{Scheme: "https", Host: "example.com", Path: "/ip"}

	provider := CustomProvider(u)

	assert.Equal(t, Provider("url:https://example.com/ip"), provider)
	assert.NoError(t, ValidateProvider(provider))
}
