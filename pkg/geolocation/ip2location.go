package geolocation

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/ip2location/ip2location-go/v9"
)

func newIP2Location(path string) (p *ip2Location, err error) {
	db, err := ip2location.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &ip2Location{
		db: db,
	}, nil
}

type ip2Location struct {
	db *ip2location.DB
}

func (p *ip2Location) get(_ context.Context, ip string) (
	payload Payload, err error) {
	if ip == "" {
		return payload, fmt.Errorf("%w: with the IP2Location database", ErrOwnIPUnsupported)
	}

	if net.ParseIP(ip) == nil {
		return payload, fmt.Errorf("%w: %s", ErrIPMalformed, ip)
	}

	record, err := p.db.Get_all(ip)
	if err != nil {
		return payload, fmt.Errorf("looking up IP address: %w", err)
	}

	countryCode := ip2LocationField(record.Country_short)
	if countryCode == "" {
		return payload, fmt.Errorf("%w: %s", ErrIPNotFound, ip)
	}

	payload.IP = ip
	payload.Country = Name{
		Name:    ip2LocationField(record.Country_long),
		ISOCode: countryCode,
	}
	payload.Region.Name = ip2LocationField(record.Region)
	payload.City.Name = ip2LocationField(record.City)
	payload.Location = Coordinates{
		Latitude:  float64(record.Latitude),
		Longitude: float64(record.Longitude),
	}
	payload.Postcode = ip2LocationField(record.Zipcode)
	payload.ISP = ip2LocationField(record.Isp)

	offset, ok := parseUTCOffset(ip2LocationField(record.Timezone))
	if ok {
		payload.Timezone.OffsetSTD = float64(offset)
	}

	return payload, nil
}

func (p *ip2Location) close() (err error) {
	p.db.Close()
	return nil
}

// ip2LocationField returns the empty string for placeholder
// values returned by IP2Location databases for fields they do not carry.
func ip2LocationField(value string) string {
	switch {
	case value == "-",
		strings.HasPrefix(value, "This parameter is unavailable"),
		strings.HasPrefix(value, "Invalid IP address"),
		strings.HasPrefix(value, "Invalid database file"):
		return ""
	default:
		return value
	}
}
