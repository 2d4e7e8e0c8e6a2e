// Package resolution resolves lookup queries to location records,
// using fallback data whenever the geolocation service cannot be used.
package resolution

import (
	"context"
	"fmt"
	"strings"

	"github.com/qdm12/ip-tracker/internal/query"
)

type Pipeline struct {
	geo    GeoFetcher
	logger Logger
}

func New(geo GeoFetcher, logger Logger) *Pipeline {
	return &Pipeline{
		geo:    geo,
		logger: logger,
	}
}

// Resolve resolves the query given to a location record.
// It never fails: any error is absorbed into fallback data
// and reported in the Reason field of the result.
func (p *Pipeline) Resolve(ctx context.Context, rawQuery string) (result Result) {
	q := strings.TrimSpace(rawQuery)
	kind := query.Classify(q)

	var err error
	switch kind {
	case query.Empty, query.IPv4:
		payload, fetchErr := p.geo.Get(ctx, q)
		if fetchErr == nil {
			p.logger.Debug(fmt.Sprintf("resolved %s query %q to %s",
				kind, q, payload.IP))
			return Result{
				Record: Normalize(payload),
				Source: Live,
			}
		}
		err = fmt.Errorf("geolocating: %w", fetchErr)
	case query.Domain:
		err = fmt.Errorf("%w: %s", ErrDomainNotSupported, q)
	default:
		err = fmt.Errorf("%w: %q", ErrQueryInvalid, q)
	}

	p.logger.Warn(fmt.Sprintf("using fallback data for %s query %q: %s",
		kind, q, err))

	return Result{
		Record: FallbackRecord(q),
		Source: Fallback,
		Reason: err,
	}
}
