package geolocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

func newGeoapify(client *http.Client, baseURL, apiKey string) *geoapify {
	return &geoapify{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type geoapify struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func (p *geoapify) get(ctx context.Context, ip string) (
	payload Payload, err error) {
	values := url.Values{}
	if ip != "" {
		values.Set("ip", ip)
	}
	values.Set("apiKey", p.apiKey)
	requestURL := p.baseURL + "?" + values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return payload, fmt.Errorf("creating request: %w", redactAPIKey(err))
	}

	response, err := p.client.Do(request)
	if err != nil {
		return payload, fmt.Errorf("doing request: %w", redactAPIKey(err))
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices:
	case response.StatusCode == http.StatusBadRequest:
		return payload, fmt.Errorf("%w (%s)", ErrInvalidIPFormat, bodyToSingleLine(response.Body))
	case response.StatusCode == http.StatusUnauthorized:
		return payload, fmt.Errorf("%w (%s)", ErrInvalidAPIKey, bodyToSingleLine(response.Body))
	case response.StatusCode == http.StatusForbidden:
		return payload, fmt.Errorf("%w (%s)", ErrAccessDenied, bodyToSingleLine(response.Body))
	default:
		return payload, fmt.Errorf("%w: %d %s (%s)", ErrBadHTTPStatus,
			response.StatusCode, http.StatusText(response.StatusCode),
			bodyToSingleLine(response.Body))
	}

	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&payload)
	if err != nil {
		return Payload{}, fmt.Errorf("decoding JSON response: %w", err)
	}

	if payload.hasError() {
		message := payload.errorMessage()
		if message == "" {
			return Payload{}, ErrAPI
		}
		return Payload{}, fmt.Errorf("%w: %s", ErrAPI, message)
	}

	return payload, nil
}

func (p *geoapify) close() (err error) { return nil }

// redactAPIKey removes the API key from the URL of url errors,
// so it does not end up in logs.
func redactAPIKey(err error) error {
	urlErr := new(url.Error)
	if !errors.As(err, &urlErr) {
		return err
	}
	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return err
	}
	values := u.Query()
	if !values.Has("apiKey") {
		return err
	}
	values.Set("apiKey", "[redacted]")
	u.RawQuery = values.Encode()
	urlErr.URL = u.String()
	return err
}
