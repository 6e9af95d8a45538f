package cli

import (
	"fmt"

	"github.com/litescript/ls-sunpos/internal/version"
)

// Flags for the `version` command line command, for `go-flags` to parse
// command line args into.
type VersionCommand struct{}

// Executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	fmt.Printf("ls-sunpos v%s\n", version.Version)
	return nil
}
