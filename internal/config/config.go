// Package config handles observer, clock and display settings.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/litescript/ls-messier/internal/astro"
	"github.com/litescript/ls-messier/internal/catalog"
)

// MinRefresh is the shortest allowed display refresh interval.
const MinRefresh = time.Second

// Config holds all application settings.
type Config struct {
	Observer ObserverConfig `yaml:"observer"`
	Sidereal SiderealConfig `yaml:"sidereal"`
	Display  DisplayConfig  `yaml:"display"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ObserverConfig is the observing site. Longitude is positive east.
type ObserverConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// SiderealConfig selects the sidereal time model.
type SiderealConfig struct {
	Model string `yaml:"model"` // linear or iau
	Epoch string `yaml:"epoch"` // RFC 3339, linear model only; empty means J2000
}

// DisplayConfig holds table settings.
type DisplayConfig struct {
	Refresh     time.Duration `yaml:"refresh"`
	MinAltitude float64       `yaml:"min_altitude"`
	Sort        string        `yaml:"sort"`
	VisibleOnly bool          `yaml:"visible_only"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with default values: an observer at Greenwich and
// the linear clock anchored at J2000.
func Default() *Config {
	return &Config{
		Observer: ObserverConfig{
			Name:      "Greenwich",
			Latitude:  51.4769,
			Longitude: -0.0005,
		},
		Sidereal: SiderealConfig{
			Model: astro.ClockLinear,
		},
		Display: DisplayConfig{
			Refresh:     5 * time.Second,
			MinAltitude: 0,
			Sort:        string(catalog.SortByNumber),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	if !finite(c.Observer.Latitude) || !finite(c.Observer.Longitude) {
		return fmt.Errorf("observer coordinates must be finite, got %v, %v", c.Observer.Latitude, c.Observer.Longitude)
	}
	if !finite(c.Display.MinAltitude) {
		return fmt.Errorf("display min_altitude must be finite, got %v", c.Display.MinAltitude)
	}
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer latitude %v out of range [-90, 90]", c.Observer.Latitude)
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 360 {
		return fmt.Errorf("observer longitude %v out of range [-180, 360]", c.Observer.Longitude)
	}
	if _, err := c.Clock(); err != nil {
		return err
	}
	if c.Display.Refresh < MinRefresh {
		return fmt.Errorf("display refresh %v shorter than %v", c.Display.Refresh, MinRefresh)
	}
	switch catalog.SortOrder(strings.ToLower(c.Display.Sort)) {
	case catalog.SortByNumber, catalog.SortByAltitude:
	default:
		return fmt.Errorf("unknown sort order %q", c.Display.Sort)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ObserverSite returns the configured observer.
func (c *Config) ObserverSite() astro.Observer {
	return astro.Observer{
		Name:   c.Observer.Name,
		LatDeg: c.Observer.Latitude,
		LonDeg: c.Observer.Longitude,
	}
}

// Clock builds the configured sidereal clock.
func (c *Config) Clock() (astro.Clock, error) {
	var epoch time.Time
	if s := strings.TrimSpace(c.Sidereal.Epoch); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("sidereal epoch: %w", err)
		}
		epoch = t
	}
	return astro.ParseClockModel(c.Sidereal.Model, epoch)
}

// SortOrder returns the display sort order.
func (c *Config) SortOrder() catalog.SortOrder {
	return catalog.SortOrder(strings.ToLower(c.Display.Sort))
}
