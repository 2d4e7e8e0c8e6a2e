package geolocation

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"
)

const maxMindLanguage = "en"

func newMaxMind(cityPath, asnPath string, timeNow func() time.Time) (
	m *maxMind, err error) {
	city, err := geoip2.Open(cityPath)
	if err != nil {
		return nil, fmt.Errorf("opening city database: %w", err)
	}

	m = &maxMind{
		city:    city,
		timeNow: timeNow,
	}

	if asnPath != "" {
		m.asn, err = geoip2.Open(asnPath)
		if err != nil {
			_ = city.Close()
			return nil, fmt.Errorf("opening ASN database: %w", err)
		}
	}

	return m, nil
}

type maxMind struct {
	city    *geoip2.Reader
	asn     *geoip2.Reader // optional
	timeNow func() time.Time
}

func (m *maxMind) get(_ context.Context, ip string) (
	payload Payload, err error) {
	if ip == "" {
		return payload, fmt.Errorf("%w: with the MaxMind database", ErrOwnIPUnsupported)
	}

	netIP := net.ParseIP(ip)
	if netIP == nil {
		return payload, fmt.Errorf("%w: %s", ErrIPMalformed, ip)
	}

	record, err := m.city.City(netIP)
	if err != nil {
		return payload, fmt.Errorf("looking up city: %w", err)
	} else if record.Country.IsoCode == "" &&
		record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return payload, fmt.Errorf("%w: %s", ErrIPNotFound, ip)
	}

	payload.IP = ip
	payload.Country = Name{
		Name:    record.Country.Names[maxMindLanguage],
		ISOCode: record.Country.IsoCode,
	}
	if len(record.Subdivisions) > 0 {
		payload.State = Name{
			Name:    record.Subdivisions[0].Names[maxMindLanguage],
			ISOCode: record.Subdivisions[0].IsoCode,
		}
	}
	payload.City.Name = record.City.Names[maxMindLanguage]
	payload.Location = Coordinates{
		Latitude:  record.Location.Latitude,
		Longitude: record.Location.Longitude,
	}
	payload.Postcode = record.Postal.Code

	if record.Location.TimeZone != "" {
		payload.Timezone.Name = record.Location.TimeZone
		offset, err := standardOffset(record.Location.TimeZone, m.timeNow())
		if err != nil {
			return payload, fmt.Errorf("computing timezone offset: %w", err)
		}
		payload.Timezone.OffsetSTD = float64(offset)
	}

	if m.asn != nil {
		asnRecord, err := m.asn.ASN(netIP)
		if err != nil {
			return payload, fmt.Errorf("looking up ASN: %w", err)
		}
		payload.Organization = asnRecord.AutonomousSystemOrganization
	}

	return payload, nil
}

func (m *maxMind) close() (err error) {
	err = m.city.Close()
	if m.asn != nil {
		asnErr := m.asn.Close()
		if err == nil {
			err = asnErr
		}
	}
	return err
}
