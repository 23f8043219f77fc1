package config

import (
	"flag"
	"time"
)

// Flags holds command-line overrides. Only flags the user actually set are
// applied over the file.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath  string
	Lat         float64
	Lon         float64
	Clock       string
	Epoch       string
	LogLevel    string
	LogFile     string
	Refresh     time.Duration
	Sort        string
	MinAltitude float64
	VisibleOnly bool

	// Run mode, not part of Config.
	Time    string
	Object  string
	Summary bool
	JSON    bool
}

// RegisterFlags defines the application flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.Float64Var(&f.Lat, "lat", 0, "Observer latitude in degrees (north positive)")
	fs.Float64Var(&f.Lon, "lon", 0, "Observer longitude in degrees (east positive)")
	fs.StringVar(&f.Clock, "clock", "", "Sidereal time model (linear, iau)")
	fs.StringVar(&f.Epoch, "epoch", "", "Linear clock epoch, RFC 3339 (default J2000)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")
	fs.DurationVar(&f.Refresh, "refresh", 0, "Display refresh interval (e.g., 5s, 1m)")
	fs.StringVar(&f.Sort, "sort", "", "Sort order (number, altitude)")
	fs.Float64Var(&f.MinAltitude, "min-alt", 0, "Minimum altitude for visible objects")
	fs.BoolVar(&f.VisibleOnly, "visible", false, "Show only objects above the minimum altitude")
	fs.StringVar(&f.Time, "time", "", "Observation time, RFC 3339 (default now)")
	fs.StringVar(&f.Object, "object", "", "Show a single object, e.g. M31")
	fs.BoolVar(&f.Summary, "summary", false, "Print text summary instead of TUI")
	fs.BoolVar(&f.JSON, "json", false, "Print JSON snapshot instead of TUI")
	return f
}

// apply copies explicitly set flags into cfg.
func (f *Flags) apply(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "lat":
			cfg.Observer.Latitude = f.Lat
			cfg.Observer.Name = ""
		case "lon":
			cfg.Observer.Longitude = f.Lon
			cfg.Observer.Name = ""
		case "clock":
			cfg.Sidereal.Model = f.Clock
		case "epoch":
			cfg.Sidereal.Epoch = f.Epoch
		case "log-level":
			cfg.Logging.Level = f.LogLevel
		case "log-file":
			cfg.Logging.File = f.LogFile
		case "refresh":
			cfg.Display.Refresh = f.Refresh
		case "sort":
			cfg.Display.Sort = f.Sort
		case "min-alt":
			cfg.Display.MinAltitude = f.MinAltitude
		case "visible":
			cfg.Display.VisibleOnly = f.VisibleOnly
		}
	})
}

// ObservationTime parses --time, returning now when unset.
func (f *Flags) ObservationTime(now time.Time) (time.Time, error) {
	if f.Time == "" {
		return now, nil
	}
	return time.Parse(time.RFC3339, f.Time)
}
