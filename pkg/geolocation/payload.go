package geolocation

import (
	"encoding/json"
	"strings"
)

// Payload is the raw IP information as returned by the Geoapify
// IP geolocation API. The offline providers fill in the same structure.
// Every field is optional and left to its zero value if absent.
type Payload struct {
	IP           string          `json:"ip"`
	Country      Name            `json:"country"`
	State        Name            `json:"state"`
	Region       Name            `json:"region"`
	City         Name            `json:"city"`
	Location     Coordinates     `json:"location"`
	Postcode     string          `json:"postcode"`
	ISP          string          `json:"isp"`
	Organization string          `json:"organization"`
	Timezone     Timezone        `json:"timezone"`
	Error        json.RawMessage `json:"error,omitempty"`
}

type Name struct {
	Name    string `json:"name"`
	ISOCode string `json:"iso_code,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Timezone struct {
	Name string `json:"name"`
	// OffsetSTD is the standard time offset to UTC, in seconds.
	OffsetSTD float64 `json:"offset_STD"`
}

// hasError returns true if the error field is set to a truthy
// JSON value. Absent, null, false, "" and 0 are not errors.
func (p Payload) hasError() bool {
	if len(strings.TrimSpace(string(p.Error))) == 0 {
		return false
	}

	var value interface{}
	err := json.Unmarshal(p.Error, &value)
	if err != nil {
		return true
	}

	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case float64:
		return typed != 0
	default:
		return true
	}
}

// errorMessage returns the message of the error field,
// which can either be a JSON object with a message field
// or a JSON string.
func (p Payload) errorMessage() (message string) {
	var object struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(p.Error, &object)
	if err == nil && object.Message != "" {
		return object.Message
	}

	err = json.Unmarshal(p.Error, &message)
	if err == nil && message != "" {
		return message
	}

	return ""
}
