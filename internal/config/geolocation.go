package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-tracker/pkg/geolocation"
)

type Geolocation struct {
	Provider        string
	GeoapifyAPIKey  string
	GeoapifyURL     string
	Timeout         time.Duration
	MaxMindCityPath string
	MaxMindASNPath  string
	IP2LocationPath string
}

func (g *Geolocation) setDefaults() {
	g.Provider = gosettings.DefaultComparable(g.Provider, string(geolocation.Geoapify))
	g.GeoapifyURL = gosettings.DefaultComparable(g.GeoapifyURL, "https://api.geoapify.com/v1/ipinfo")
	const defaultTimeout = 10 * time.Second
	g.Timeout = gosettings.DefaultComparable(g.Timeout, defaultTimeout)
}

var (
	ErrGeoapifyAPIKeyMissing = errors.New("Geoapify API key is missing")
	ErrGeoapifyURLNotValid   = errors.New("Geoapify URL is not valid")
	ErrMaxMindCityPathEmpty  = errors.New("MaxMind city database path is empty")
	ErrIP2LocationPathEmpty  = errors.New("IP2Location database path is empty")
)

func (g Geolocation) Validate() (err error) {
	err = geolocation.ValidateProvider(geolocation.Provider(g.Provider))
	if err != nil {
		return err
	}

	if g.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, g.Timeout)
	}

	switch geolocation.Provider(g.Provider) {
	case geolocation.Geoapify:
		if g.GeoapifyAPIKey == "" {
			return fmt.Errorf("%w", ErrGeoapifyAPIKeyMissing)
		}
		u, err := url.Parse(g.GeoapifyURL)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGeoapifyURLNotValid, err)
		} else if u.Scheme != "https" && u.Scheme != "http" {
			return fmt.Errorf("%w: scheme %q is not http or https",
				ErrGeoapifyURLNotValid, u.Scheme)
		}
	case geolocation.MaxMind:
		if g.MaxMindCityPath == "" {
			return fmt.Errorf("%w", ErrMaxMindCityPathEmpty)
		}
	case geolocation.IP2Location:
		if g.IP2LocationPath == "" {
			return fmt.Errorf("%w", ErrIP2LocationPathEmpty)
		}
	}

	return nil
}

func (g Geolocation) toLinesNode() *gotree.Node {
	node := gotree.New("Geolocation")
	node.Appendf("Provider: %s", g.Provider)
	switch geolocation.Provider(g.Provider) {
	case geolocation.Geoapify:
		node.Appendf("API key: %s", obfuscate(g.GeoapifyAPIKey))
		node.Appendf("URL: %s", g.GeoapifyURL)
	case geolocation.MaxMind:
		node.Appendf("City database: %s", g.MaxMindCityPath)
		if g.MaxMindASNPath != "" {
			node.Appendf("ASN database: %s", g.MaxMindASNPath)
		}
	case geolocation.IP2Location:
		node.Appendf("Database: %s", g.IP2LocationPath)
	}
	node.Appendf("Timeout: %s", g.Timeout)
	return node
}

// ToOptions assumes the settings have been validated.
func (g Geolocation) ToOptions() (options []geolocation.Option) {
	return []geolocation.Option{
		geolocation.SetProvider(geolocation.Provider(g.Provider)),
		geolocation.SetGeoapify(g.GeoapifyAPIKey, g.GeoapifyURL),
		geolocation.SetMaxMind(g.MaxMindCityPath, g.MaxMindASNPath),
		geolocation.SetIP2Location(g.IP2LocationPath),
		geolocation.SetTimeout(g.Timeout),
	}
}

func (g *Geolocation) read(r *reader.Reader) (err error) {
	g.Provider = r.String("GEOLOCATION_PROVIDER")
	g.GeoapifyAPIKey = r.String("GEOAPIFY_API_KEY", reader.ForceLowercase(false))
	g.GeoapifyURL = r.String("GEOAPIFY_URL", reader.ForceLowercase(false))
	g.MaxMindCityPath = r.String("MAXMIND_CITY_PATH", reader.ForceLowercase(false))
	g.MaxMindASNPath = r.String("MAXMIND_ASN_PATH", reader.ForceLowercase(false))
	g.IP2LocationPath = r.String("IP2LOCATION_PATH", reader.ForceLowercase(false))
	g.Timeout, err = r.Duration("GEOLOCATION_TIMEOUT")
	return err
}

func obfuscate(s string) string {
	const visible = 3
	switch {
	case s == "":
		return "[not set]"
	case len(s) <= visible:
		return "[set]"
	default:
		return s[:visible] + "..."
	}
}
