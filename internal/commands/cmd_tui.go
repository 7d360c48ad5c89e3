package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/nhle/admin-console/internal/app"
	"github.com/nhle/admin-console/internal/logging"
)

// TuiCmd opens the interactive console.
type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as the default action.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	if err := cmd.flags.Setup(ctx); err != nil {
		return err
	}

	root := app.New(cmd.flags.Notifications, cmd.flags.Config, logging.Component("app"))

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
