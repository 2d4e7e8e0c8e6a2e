package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/qdm12/ip-tracker/pkg/publicip/dns"
	"github.com/qdm12/ip-tracker/pkg/publicip/http"
)

const all = "all"

type PubIP struct {
	HTTPEnabled   *bool
	HTTPProviders []string
	DNSEnabled    *bool
	DNSProviders  []string
	Timeout       time.Duration
}

func (p *PubIP) setDefaults() {
	p.HTTPEnabled = gosettings.DefaultPointer(p.HTTPEnabled, true)
	p.HTTPProviders = gosettings.DefaultSlice(p.HTTPProviders, []string{string(http.Ipify)})
	p.DNSEnabled = gosettings.DefaultPointer(p.DNSEnabled, false)
	p.DNSProviders = gosettings.DefaultSlice(p.DNSProviders, []string{all})
	const defaultTimeout = 5 * time.Second
	p.Timeout = gosettings.DefaultComparable(p.Timeout, defaultTimeout)
}

var ErrNoFetcherEnabled = errors.New("no public IP fetcher enabled")

func (p PubIP) Validate() (err error) {
	if !*p.HTTPEnabled && !*p.DNSEnabled {
		return fmt.Errorf("%w", ErrNoFetcherEnabled)
	}

	if p.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, p.Timeout)
	}

	err = validateHTTPProviders(p.HTTPProviders)
	if err != nil {
		return fmt.Errorf("HTTP providers: %w", err)
	}

	err = p.validateDNSProviders()
	if err != nil {
		return fmt.Errorf("DNS providers: %w", err)
	}

	return nil
}

func (p PubIP) toLinesNode() (node *gotree.Node) {
	node = gotree.New("Public IP fetching")

	node.Appendf("HTTP enabled: %s", gosettings.BoolToYesNo(p.HTTPEnabled))
	if *p.HTTPEnabled {
		childNode := node.Appendf("HTTP providers")
		for _, provider := range p.HTTPProviders {
			childNode.Appendf(provider)
		}
	}

	node.Appendf("DNS enabled: %s", gosettings.BoolToYesNo(p.DNSEnabled))
	if *p.DNSEnabled {
		childNode := node.Appendf("DNS over TLS providers")
		for _, provider := range p.DNSProviders {
			childNode.Appendf(provider)
		}
	}

	node.Appendf("Timeout: %s", p.Timeout)

	return node
}

// ToHTTPOptions assumes the settings have been validated.
func (p PubIP) ToHTTPOptions() (options []http.Option) {
	seen := make(map[http.Provider]struct{}, len(p.HTTPProviders))
	providers := make([]http.Provider, 0, len(p.HTTPProviders))
	appendUnique := func(provider http.Provider) {
		if _, ok := seen[provider]; ok {
			return
		}
		seen[provider] = struct{}{}
		providers = append(providers, provider)
	}

	for _, providerString := range p.HTTPProviders {
		switch {
		case providerString == all:
			for _, provider := range http.ListProviders() {
				appendUnique(provider)
			}
		case strings.HasPrefix(providerString, "https://"):
			u, _ := url.Parse(providerString)
			appendUnique(http.CustomProvider(u))
		default:
			appendUnique(http.Provider(providerString))
		}
	}

	return []http.Option{
		http.SetProviders(providers[0], providers[1:]...),
		http.SetTimeout(p.Timeout),
	}
}

// ToDNSOptions assumes the settings have been validated.
func (p PubIP) ToDNSOptions() (options []dns.Option) {
	seen := make(map[dns.Provider]struct{}, len(p.DNSProviders))
	providers := make([]dns.Provider, 0, len(p.DNSProviders))
	for _, providerString := range p.DNSProviders {
		candidates := []dns.Provider{dns.Provider(providerString)}
		if providerString == all {
			candidates = dns.ListProviders()
		}
		for _, provider := range candidates {
			if _, ok := seen[provider]; ok {
				continue
			}
			seen[provider] = struct{}{}
			providers = append(providers, provider)
		}
	}

	return []dns.Option{
		dns.SetProviders(providers[0], providers[1:]...),
		dns.SetTimeout(p.Timeout),
	}
}

var (
	ErrNoPublicIPDNSProvider  = errors.New("no public IP DNS provider specified")
	ErrNoPublicIPHTTPProvider = errors.New("no public IP HTTP provider specified")
)

func (p PubIP) validateDNSProviders() (err error) {
	if len(p.DNSProviders) == 0 {
		return fmt.Errorf("%w", ErrNoPublicIPDNSProvider)
	}

	availableProviders := dns.ListProviders()
	validChoices := make([]string, len(availableProviders)+1)
	for i, provider := range availableProviders {
		validChoices[i] = string(provider)
	}
	validChoices[len(validChoices)-1] = all
	return validate.AreAllOneOf(p.DNSProviders, validChoices)
}

func validateHTTPProviders(providerStrings []string) (err error) {
	if len(providerStrings) == 0 {
		return fmt.Errorf("%w", ErrNoPublicIPHTTPProvider)
	}

	availableProviders := http.ListProviders()
	choices := make(map[string]struct{}, len(availableProviders)+1)
	choices[all] = struct{}{}
	for i := range availableProviders {
		choices[string(availableProviders[i])] = struct{}{}
	}

	for _, providerString := range providerStrings {
		// Custom URL check
		url, err := url.Parse(providerString)
		if err == nil && url != nil && url.Scheme == "https" {
			continue
		}

		_, ok := choices[providerString]
		if !ok {
			return fmt.Errorf("%w: %s", validate.ErrValueNotOneOf, providerString)
		}
	}

	return nil
}

var ErrInvalidFetcher = errors.New("invalid fetcher specified")

func (p *PubIP) read(r *reader.Reader, warner Warner) (err error) {
	p.HTTPEnabled, p.DNSEnabled, err = readFetchers(r)
	if err != nil {
		return err
	}

	p.HTTPProviders = r.CSV("PUBLICIP_HTTP_PROVIDERS", reader.ForceLowercase(false))
	p.DNSProviders = r.CSV("PUBLICIP_DNS_PROVIDERS")

	// renamed in favour of PUBLICIP_TIMEOUT
	if r.Get("PUBLICIP_DNS_TIMEOUT") != nil {
		warnRenamed(warner, "PUBLICIP_DNS_TIMEOUT", "PUBLICIP_TIMEOUT")
		p.Timeout, err = r.Duration("PUBLICIP_DNS_TIMEOUT")
		if err != nil {
			return err
		}
	}

	timeout, err := r.Duration("PUBLICIP_TIMEOUT")
	if err != nil {
		return err
	} else if timeout != 0 {
		p.Timeout = timeout
	}

	return nil
}

func readFetchers(r *reader.Reader) (http, dns *bool, err error) {
	fields := r.CSV("PUBLICIP_FETCHERS")
	if len(fields) == 0 {
		return nil, nil, nil
	}

	http, dns = new(bool), new(bool)
	for i, field := range fields {
		switch field {
		case all:
			*http = true
			*dns = true
		case "http":
			*http = true
		case "dns":
			*dns = true
		default:
			return nil, nil, fmt.Errorf(
				"%w: %q at position %d of %d",
				ErrInvalidFetcher, field, i+1, len(fields))
		}
	}

	return http, dns, nil
}
