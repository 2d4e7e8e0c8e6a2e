package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	client := &http.Client{Timeout: time.Second}

	testCases := map[string]struct {
		options []Option
		urls    []string
		timeout time.Duration
		err     error
	}{
		"no options": {
			urls:    []string{"https://api.ipify.org?format=json"},
			timeout: 5 * time.Second,
		},
		"with options": {
			options: []Option{
				SetProviders(Ipinfo, Provider("url:https://example.com/ip")),
				SetTimeout(time.Second),
			},
			urls:    []string{"https://ipinfo.io/ip", "https://example.com/ip"},
			timeout: time.Second,
		},
		"bad option": {
			options: []Option{
				SetProviders(Provider("invalid")),
			},
			err: errors.New("unknown public IP echo HTTP provider: invalid"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher, err := New(client, testCase.options...)

			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
				assert.Nil(t, fetcher)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, client, fetcher.client)
			assert.Equal(t, testCase.timeout, fetcher.timeout)
			assert.Equal(t, testCase.urls, fetcher.ring.urls)
			assert.Equal(t, -1, fetcher.ring.last)
			assert.Empty(t, fetcher.ring.bans)
		})
	}
}

func Test_Fetcher_IP(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	responses := map[string]struct {
		status int
		body   string
	}{
		"https://a": {status: http.StatusOK, body: "55.55.55.55"},
		"https://b": {status: http.StatusTooManyRequests, body: "rate limited"},
	}

	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			response := responses[r.URL.String()]
			return &http.Response{
				StatusCode: response.status,
				Body:       io.NopCloser(bytes.NewBufferString(response.body)),
			}, nil
		}),
	}

	fetcher := &Fetcher{
		client:  client,
		timeout: time.Hour,
		ring:    newProviderRing([]string{"https://a", "https://b"}),
	}

	publicIP, err := fetcher.IP(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{55, 55, 55, 55}), publicIP)
	assert.Equal(t, 0, fetcher.ring.last)

	_, err = fetcher.IP(ctx)
	require.Error(t, err)
	assert.Equal(t, "banned: 429 (rate limited)", err.Error())
	assert.Equal(t, map[int]string{1: "429 (rate limited)"}, fetcher.ring.bans)

	// the banned provider is skipped
	publicIP, err = fetcher.IP(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{55, 55, 55, 55}), publicIP)
	publicIP, err = fetcher.IP(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{55, 55, 55, 55}), publicIP)

	fetcher.ring.ban(0, "403 (forbidden)")
	_, err = fetcher.IP(ctx)
	require.Error(t, err)
	assert.Equal(t, "banned: 403 (forbidden) (https://a), 429 (rate limited) (https://b)",
		err.Error())
}
