package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Startup struct {
	// UseDetectedIP is whether to look up the location of the
	// detected public IP address, instead of letting the geolocation
	// service use the address the request comes from.
	UseDetectedIP *bool
}

func (s *Startup) setDefaults() {
	s.UseDetectedIP = gosettings.DefaultPointer(s.UseDetectedIP, false)
}

func (s Startup) Validate() (err error) {
	return nil
}

func (s Startup) toLinesNode() *gotree.Node {
	node := gotree.New("Startup")
	node.Appendf("Use detected IP address: %s", gosettings.BoolToYesNo(s.UseDetectedIP))
	return node
}

func (s *Startup) read(r *reader.Reader) (err error) {
	s.UseDetectedIP, err = r.BoolPtr("STARTUP_USE_DETECTED_IP")
	return err
}
