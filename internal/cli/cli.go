// Package cli provides the command-line interface for ls-sunpos.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/litescript/ls-sunpos/internal/config"
)

type CommandLineOpts struct {
	Version  bool   `short:"v" long:"version" description:"Show the program version"`
	LogLevel string `long:"log-level" description:"Log level (debug, info, warn, error)" default:"info" value-name:"<LEVEL>"`

	NowCommand     NowCommand     `command:"now" subcommands-optional:"true"`
	TableCommand   TableCommand   `command:"table" subcommands-optional:"true"`
	RisesetCommand RisesetCommand `command:"riseset" subcommands-optional:"true"`
	BatchCommand   BatchCommand   `command:"batch" subcommands-optional:"true"`
	TUICommand     TUICommand     `command:"tui" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

// configPath resolves the config file location: $LS_SUNPOS_CONFIG if set,
// otherwise ~/.config/ls-sunpos/config.yaml.
func configPath() string {
	if p := os.Getenv("LS_SUNPOS_CONFIG"); p != "" {
		return strings.TrimRight(p, "/")
	}
	return os.Getenv("HOME") + "/.config/ls-sunpos/config.yaml"
}

// loadSite loads the configuration and resolves the named site (empty means
// the configured default).
func loadSite(name string) (config.Config, config.Site, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return cfg, config.Site{}, fmt.Errorf("load config: %w", err)
	}
	site, err := cfg.Lookup(name)
	if err != nil {
		return cfg, config.Site{}, err
	}
	return cfg, site, nil
}

// parseWhen parses a point in time: RFC 3339, "2006-01-02 15:04:05", or a
// bare date (midnight UT). Empty means now.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want RFC 3339 or YYYY-MM-DD)", s)
}
