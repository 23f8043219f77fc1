// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Config file, rotating log file, rise/set events, IAU mean sidereal clock
// 0.2.0 - Visibility windows, sun altitude and twilight, headless object card
// 0.1.0 - Initial release: Messier catalog, live altitude/azimuth table, summary mode
