// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - TUI dashboard with day-path sparkline, site cycling, event log
// 0.2.0 - Rise/set/transit solver, civil twilight support, batch date files
// 0.1.0 - Initial release: position pipeline, refraction, JSON/table output
