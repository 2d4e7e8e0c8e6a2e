package httplog

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/ip-tracker/internal/httplog/mock_httplog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewClient(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		requestMethod      string
		requestPath        string
		requestHeaders     http.Header
		requestBody        string
		requestLineRegex   string
		serverAPIKey       string
		responseStatusCode int
		responseBody       string
		responseLineRegex  string
	}{
		"post_with_headers_and_body": {
			requestMethod: http.MethodPost,
			requestPath:   "/",
			requestHeaders: http.Header{
				"Key2": []string{"value 3"},
				"Key1": []string{"value 1", "value 2"},
			},
			requestBody: "request\nbody",
			requestLineRegex: `^POST http://127\.0\.0\.1:\d+/ \| ` +
				`headers: Key1: value 1,value 2; Key2: value 3 \| ` +
				`body: request body$`,
			responseStatusCode: http.StatusAccepted,
			responseBody:       "response body",
			responseLineRegex: `^202 Accepted \| ` +
				`headers: Content-Length: 13; Content-Type: text/plain; charset=utf-8; Date: .+ \| ` +
				`body: response body$`,
		},
		"get_with_redacted_api_key": {
			requestMethod:      http.MethodGet,
			requestPath:        "/v1/ipinfo?ip=1.2.3.4&apiKey=secret",
			requestLineRegex:   `^GET http://127\.0\.0\.1:\d+/v1/ipinfo\?apiKey=redacted&ip=1\.2\.3\.4$`,
			serverAPIKey:       "secret",
			responseStatusCode: http.StatusOK,
			responseBody:       `{"ip":"1.2.3.4"}`,
			responseLineRegex:  `^200 OK \| headers: .+ \| body: \{"ip":"1\.2\.3\.4"\}$`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			handler := http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.requestMethod, request.Method)
				assert.Equal(t, testCase.serverAPIKey, request.URL.Query().Get("apiKey"))
				b, err := io.ReadAll(request.Body)
				require.NoError(t, err)
				assert.Equal(t, testCase.requestBody, string(b))

				rw.WriteHeader(testCase.responseStatusCode)
				_, err = rw.Write([]byte(testCase.responseBody))
				require.NoError(t, err)
			})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			client := server.Client()

			logger := mock_httplog.NewMockDebugLogger(ctrl)
			logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.requestLineRegex, s)
				})
			logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.responseLineRegex, s)
				})

			logClient := NewClient(client, logger, "apiKey")

			assert.Equal(t, client.Timeout, logClient.Timeout)

			var requestBody io.Reader
			if testCase.requestBody != "" {
				requestBody = bytes.NewBufferString(testCase.requestBody)
			}
			request, err := http.NewRequestWithContext(context.Background(),
				testCase.requestMethod, server.URL+testCase.requestPath, requestBody)
			require.NoError(t, err)
			for key, values := range testCase.requestHeaders {
				request.Header[key] = values
			}

			response, err := logClient.Do(request)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, testCase.responseStatusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.responseBody, string(b))
		})
	}
}

func Test_redactURL(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		rawURL string
		keys   []string
		result string
	}{
		"no_keys": {
			rawURL: "https://example.com/?apiKey=secret",
			result: "https://example.com/?apiKey=secret",
		},
		"key_absent": {
			rawURL: "https://example.com/?ip=1.2.3.4",
			keys:   []string{"apiKey"},
			result: "https://example.com/?ip=1.2.3.4",
		},
		"key_present": {
			rawURL: "https://example.com/?apiKey=secret",
			keys:   []string{"apiKey"},
			result: "https://example.com/?apiKey=redacted",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(testCase.rawURL)
			require.NoError(t, err)

			result := redactURL(u, testCase.keys)

			assert.Equal(t, testCase.result, result)
			assert.Equal(t, testCase.rawURL, u.String())
		})
	}
}
