package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client      Client
	Geolocation Geolocation
	PubIP       PubIP
	Startup     Startup
	UI          UI
	Logger      Logger
	Shoutrrr    Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Geolocation.setDefaults()
	c.PubIP.setDefaults()
	c.Startup.setDefaults()
	c.UI.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := []struct {
		name      string
		validator validator
	}{
		{name: "client", validator: &c.Client},
		{name: "geolocation", validator: &c.Geolocation},
		{name: "public ip", validator: &c.PubIP},
		{name: "startup", validator: &c.Startup},
		{name: "ui", validator: &c.UI},
		{name: "logger", validator: &c.Logger},
		{name: "shoutrrr", validator: &c.Shoutrrr},
	}

	for _, v := range toValidate {
		err = v.validator.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", v.name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Geolocation.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Startup.toLinesNode())
	node.AppendNode(c.UI.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.Geolocation.read(reader)
	if err != nil {
		return fmt.Errorf("reading geolocation settings: %w", err)
	}

	err = c.PubIP.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Startup.read(reader)
	if err != nil {
		return fmt.Errorf("reading startup settings: %w", err)
	}

	err = c.UI.read(reader)
	if err != nil {
		return fmt.Errorf("reading UI settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
