package http

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := newDefaultSettings()

	assert.Equal(t, []Provider{Ipify}, settings.providers)
	assert.Equal(t, 5*time.Second, settings.timeout)
}

func Test_SetProviders(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		initialSettings  settings
		providers        []Provider
		expectedSettings settings
		err              error
	}{
		"Ipinfo": {
			initialSettings: settings{
				providers: []Provider{Ipify},
			},
			providers: []Provider{Ipinfo},
			expectedSettings: settings{
				providers: []Provider{Ipinfo},
			},
		},
		"Ipinfo and custom": {
			initialSettings: settings{
				providers: []Provider{Ipify},
			},
			providers: []Provider{Ipinfo, "url:https://example.com"},
			expectedSettings: settings{
				providers: []Provider{Ipinfo, "url:https://example.com"},
			},
		},
		"plain HTTP custom URL": {
			initialSettings: settings{
				providers: []Provider{Ipify},
			},
			providers: []Provider{"url:http://example.com"},
			expectedSettings: settings{
				providers: []Provider{Ipify},
			},
			err: errors.New("unknown public IP echo HTTP provider: url:http://example.com"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			settings := testCase.initialSettings

			option := SetProviders(testCase.providers[0], testCase.providers[1:]...)
			err := option(&settings)

			assert.Equal(t, testCase.expectedSettings, settings)

			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_SetTimeout(t *testing.T) {
	t.Parallel()

	initialSettings := settings{}
	expectedSettings := settings{
		timeout: time.Hour,
	}

	option := SetTimeout(time.Hour)
	err := option(&initialSettings)

	require.NoError(t, err)
	assert.Equal(t, expectedSettings, initialSettings)
}
