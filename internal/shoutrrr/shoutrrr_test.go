package shoutrrr

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_withDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address        string
		defaultTitle   string
		updatedAddress string
	}{
		"generic_with_empty_title": {
			address:        "generic://example.com?title=",
			defaultTitle:   "IP Tracker",
			updatedAddress: "generic://example.com?title=",
		},
		"generic_with_title": {
			address:        "generic://example.com?title=MyTitle",
			defaultTitle:   "IP Tracker",
			updatedAddress: "generic://example.com?title=MyTitle",
		},
		"generic_without_title": {
			address:        "generic://example.com",
			defaultTitle:   "IP Tracker",
			updatedAddress: "generic://example.com?title=IP+Tracker",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			address, err := url.Parse(testCase.address)
			require.NoError(t, err)

			updatedAddress := withDefaultTitle(address, testCase.defaultTitle)

			assert.Equal(t, testCase.updatedAddress, updatedAddress)
		})
	}
}

func Test_New(t *testing.T) {
	t.Parallel()

	t.Run("no_address", func(t *testing.T) {
		t.Parallel()

		client, err := New(Settings{})
		require.NoError(t, err)
		assert.Empty(t, client.services)

		client.Notify("nothing is sent")
	})

	t.Run("services_named_by_scheme", func(t *testing.T) {
		t.Parallel()

		client, err := New(Settings{Addresses: []string{"generic://example.com"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"generic"}, client.services)
	})

	t.Run("unknown_service", func(t *testing.T) {
		t.Parallel()

		_, err := New(Settings{Addresses: []string{"notaservice://example.com"}})
		require.Error(t, err)
		assert.ErrorContains(t, err, "validating settings: shoutrrr addresses: ")
	})
}
