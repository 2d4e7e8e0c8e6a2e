package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type Provider string

const (
	Ifconfig  Provider = "ifconfig"
	Ipify     Provider = "ipify"
	Ipinfo    Provider = "ipinfo"
	Icanhazip Provider = "icanhazip"
	Ident     Provider = "ident"
	Wtfismyip Provider = "wtfismyip"
	Seeip     Provider = "seeip"
)

func ListProviders() []Provider {
	return []Provider{
		Ifconfig,
		Ipify,
		Ipinfo,
		Icanhazip,
		Ident,
		Wtfismyip,
		Seeip,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo HTTP provider")

func ValidateProvider(provider Provider) error {
	if strings.HasPrefix(string(provider), "url:https://") { // custom HTTP url
		return nil
	}

	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

func (provider Provider) url() (url string) {
	switch provider {
	case Ifconfig:
		return "https://ifconfig.io/ip"
	case Ipify:
		return "https://api.ipify.org?format=json"
	case Ipinfo:
		return "https://ipinfo.io/ip"
	case Icanhazip:
		return "https://ipv4.icanhazip.com"
	case Ident:
		return "https://v4.ident.me"
	case Wtfismyip:
		return "https://ipv4.wtfismyip.com/text"
	case Seeip:
		return "https://ipv4.seeip.org"
	}
	return strings.TrimPrefix(string(provider), "url:")
}

// CustomProvider creates a provider with a custom HTTPS URL.
// It is the responsibility of the caller to make sure it is a valid URL
// returning an IPv4 address, as no further check is done on it.
func CustomProvider(httpsURL *url.URL) Provider { //nolint:interfacer
	return Provider("url:" + httpsURL.String())
}
