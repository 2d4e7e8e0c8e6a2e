package geolocation

import "time"

type settings struct {
	provider        Provider
	apiKey          string
	baseURL         string
	timeout         time.Duration
	maxMindCityPath string
	maxMindASNPath  string
	ip2LocationPath string
}

func (s *settings) setDefaults() {
	if s.provider == "" {
		s.provider = Geoapify
	}
	if s.baseURL == "" {
		s.baseURL = "https://api.geoapify.com/v1/ipinfo"
	}
	if s.timeout == 0 {
		const defaultTimeout = 10 * time.Second
		s.timeout = defaultTimeout
	}
}

func (s settings) validate() (err error) {
	switch s.provider {
	case Geoapify:
		if s.apiKey == "" {
			return ErrAPIKeyMissing
		}
	case MaxMind:
		if s.maxMindCityPath == "" {
			return ErrPathMissing
		}
	case IP2Location:
		if s.ip2LocationPath == "" {
			return ErrPathMissing
		}
	}
	return nil
}
