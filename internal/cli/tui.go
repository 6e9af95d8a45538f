package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/litescript/ls-sunpos/internal/state"
	"github.com/litescript/ls-sunpos/internal/ui"
)

// Flags for the `tui` command line command, for `go-flags` to parse command
// line args into.
type TUICommand struct {
	Site    string        `short:"s" long:"site" description:"site to start on (default from configuration)" value-name:"<name>"`
	Refresh time.Duration `short:"r" long:"refresh" description:"recompute interval" default:"10s" value-name:"<DURATION>"`
	LogFile string        `long:"log-file" description:"write logs to this file instead of discarding them" value-name:"<FILE>"`
}

// Executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TUICommand) Execute(args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires a terminal; use `now` or `table` for piped output")
	}

	// Stderr logging would corrupt the alternate screen
	if command.LogFile != "" {
		f, err := os.OpenFile(command.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, NoColor: true})
	} else {
		log.Logger = zerolog.Nop()
	}

	cfg, site, err := loadSite(command.Site)
	if err != nil {
		return err
	}

	startIdx := 0
	for i, s := range cfg.Sites {
		if s.Name == site.Name {
			startIdx = i
			break
		}
	}

	stateCfg := state.DefaultConfig()
	if command.Refresh > 0 {
		stateCfg.RefreshInterval = command.Refresh
	}
	stateMgr := state.NewManager(stateCfg)

	model := ui.New(stateMgr, cfg.Sites, startIdx)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
