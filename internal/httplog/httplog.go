// Package httplog wraps an HTTP client so that each request and
// response exchanged is logged at the debug level.
package httplog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

// NewClient returns a copy of client with a transport logging
// requests and responses to logger. Query parameters named in
// redacted have their values hidden in logged URLs.
func NewClient(client *http.Client, logger DebugLogger,
	redacted ...string,
) (newClient *http.Client) {
	newClient = &http.Client{
		Timeout: client.Timeout,
	}

	originalTransport := client.Transport
	if originalTransport == nil {
		originalTransport = http.DefaultTransport
	}

	transport, ok := originalTransport.(*http.Transport)
	if !ok {
		panic(fmt.Sprintf("transport %T is not *http.Transport", originalTransport))
	}

	newClient.Transport = &roundTripper{
		proxied:  transport.Clone(),
		logger:   logger,
		redacted: redacted,
	}

	return newClient
}

type roundTripper struct {
	proxied  http.RoundTripper
	logger   DebugLogger
	redacted []string
}

func (r *roundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error,
) {
	r.logger.Debug(r.requestToString(request))

	response, err = r.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	r.logger.Debug(responseToString(response))

	return response, nil
}

func (r *roundTripper) requestToString(request *http.Request) (s string) {
	s = request.Method + " " + redactURL(request.URL, r.redacted)

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		newBody, bodyString := readAndResetBody(request.Body)
		request.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		newBody, bodyString := readAndResetBody(response.Body)
		response.Body = newBody
		s += " | body: " + bodyString
	}

	return s
}

func redactURL(u *url.URL, keys []string) string {
	if len(keys) == 0 || u.RawQuery == "" {
		return u.String()
	}

	values := u.Query()
	changed := false
	for _, key := range keys {
		if values.Has(key) {
			values.Set(key, "redacted")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}

	redacted := *u
	redacted.RawQuery = values.Encode()
	return redacted.String()
}

func headerToString(header http.Header) (s string) {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		headers[i] = key + ": " + strings.Join(header[key], ",")
	}
	return strings.Join(headers, "; ")
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string,
) {
	b, err := io.ReadAll(body)
	if err != nil {
		return body, "error reading body: " + err.Error()
	}
	_ = body.Close()
	return io.NopCloser(bytes.NewReader(b)), toSingleLine(string(b))
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\r\n", " ")
	line = strings.ReplaceAll(line, "\n", " ")
	return strings.TrimSpace(line)
}
