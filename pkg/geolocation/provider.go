package geolocation

import (
	"context"
	"errors"
	"fmt"
)

type Provider string

const (
	Geoapify    Provider = "geoapify"
	MaxMind     Provider = "maxmind"
	IP2Location Provider = "ip2location"
)

func ListProviders() []Provider {
	return []Provider{
		Geoapify,
		MaxMind,
		IP2Location,
	}
}

var ErrUnknownProvider = errors.New("unknown geolocation provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type provider interface {
	get(ctx context.Context, ip string) (payload Payload, err error)
	close() (err error)
}
