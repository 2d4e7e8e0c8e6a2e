package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Client struct {
	Timeout time.Duration
}

func (c *Client) setDefaults() {
	const defaultTimeout = 10 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
}

var ErrTimeoutNotPositive = errors.New("timeout must be positive")

func (c Client) Validate() (err error) {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, c.Timeout)
	}
	return nil
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("HTTP client")
	node.Appendf("Timeout: %s", c.Timeout)
	return node
}

func (c *Client) read(reader *reader.Reader) (err error) {
	c.Timeout, err = reader.Duration("HTTP_TIMEOUT")
	return err
}
