package geolocation

import "time"

type Option func(s *settings) error

func SetProvider(provider Provider) Option {
	return func(s *settings) (err error) {
		err = ValidateProvider(provider)
		if err != nil {
			return err
		}
		s.provider = provider
		return nil
	}
}

// SetGeoapify sets the API key and base URL to use for the Geoapify provider.
// An empty base URL leaves the default base URL.
func SetGeoapify(apiKey, baseURL string) Option {
	return func(s *settings) (err error) {
		s.apiKey = apiKey
		s.baseURL = baseURL
		return nil
	}
}

// SetMaxMind sets the file paths to the MaxMind city database and
// optional ASN database, used for the MaxMind provider.
func SetMaxMind(cityPath, asnPath string) Option {
	return func(s *settings) (err error) {
		s.maxMindCityPath = cityPath
		s.maxMindASNPath = asnPath
		return nil
	}
}

func SetIP2Location(path string) Option {
	return func(s *settings) (err error) {
		s.ip2LocationPath = path
		return nil
	}
}

func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		s.timeout = timeout
		return nil
	}
}
