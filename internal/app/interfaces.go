package app

import (
	"context"
	"net/netip"

	"github.com/qdm12/ip-tracker/internal/display"
	"github.com/qdm12/ip-tracker/internal/maps"
	"github.com/qdm12/ip-tracker/internal/resolution"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Resolver,IPDetector,Display,Map,Notifier,Logger

type Resolver interface {
	Resolve(ctx context.Context, query string) (result resolution.Result)
}

type IPDetector interface {
	IP(ctx context.Context) (ip netip.Addr, err error)
}

type Display interface {
	Update(panel display.Panel)
	SetLoading(loading bool)
	ShowError(message string)
	HideError()
}

type Map interface {
	SetView(center maps.Position, zoom int)
	ReplaceMarker(position maps.Position, icon maps.Icon)
}

type Notifier interface {
	Notify(message string)
}

type Logger interface {
	Info(s string)
	Error(s string)
}
