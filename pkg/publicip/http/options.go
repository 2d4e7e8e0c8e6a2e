package http

import (
	"time"
)

type settings struct {
	providers []Provider
	timeout   time.Duration
}

func newDefaultSettings() settings {
	const defaultTimeout = 5 * time.Second
	return settings{
		providers: []Provider{Ipify},
		timeout:   defaultTimeout,
	}
}

type Option func(s *settings) error

func SetProviders(first Provider, providers ...Provider) Option {
	providers = append([]Provider{first}, providers...)
	return func(s *settings) (err error) {
		for _, provider := range providers {
			err = ValidateProvider(provider)
			if err != nil {
				return err
			}
		}
		s.providers = providers
		return nil
	}
}

func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		s.timeout = timeout
		return nil
	}
}
