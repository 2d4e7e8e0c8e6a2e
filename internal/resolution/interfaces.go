package resolution

import (
	"context"

	"github.com/qdm12/ip-tracker/pkg/geolocation"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . GeoFetcher,Logger

type GeoFetcher interface {
	Get(ctx context.Context, ip string) (payload geolocation.Payload, err error)
}

type Logger interface {
	Debug(s string)
	Warn(s string)
}
