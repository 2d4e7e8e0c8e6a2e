package config

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Shoutrrr holds the notification settings. Notifications are
// sent when the own IP detection fails at startup.
type Shoutrrr struct {
	// Addresses are the shoutrrr service URLs to notify.
	// Notifications are disabled if it is empty.
	Addresses []string
	// DefaultTitle is set on addresses not defining a title.
	DefaultTitle string
}

func (s *Shoutrrr) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "IP Tracker")
}

func (s Shoutrrr) Validate() (err error) {
	for i, address := range s.Addresses {
		_, err = shoutrrr.CreateSender(address)
		if err != nil {
			return fmt.Errorf("notification address %d of %d: %w",
				i+1, len(s.Addresses), err)
		}
	}
	return nil
}

func (s Shoutrrr) toLinesNode() *gotree.Node {
	if len(s.Addresses) == 0 {
		return gotree.New("Shoutrrr: disabled")
	}

	node := gotree.New("Shoutrrr")
	node.Appendf("Default title: %s", s.DefaultTitle)
	addressesNode := node.Appendf("Addresses")
	for _, address := range s.Addresses {
		addressesNode.Appendf(address)
	}
	return node
}

func (s *Shoutrrr) read(r *reader.Reader) {
	s.Addresses = r.CSV("SHOUTRRR_ADDRESSES", reader.ForceLowercase(false))
	s.DefaultTitle = r.String("SHOUTRRR_DEFAULT_TITLE", reader.ForceLowercase(false))
}
