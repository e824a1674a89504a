package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/modelcaps/cmd/modelcaps/cmd/list"
	"github.com/agentstation/modelcaps/cmd/modelcaps/cmd/show"
	"github.com/agentstation/modelcaps/cmd/modelcaps/cmd/update"
	"github.com/agentstation/modelcaps/cmd/modelcaps/cmd/version"
)

// CreateUpdateCommand creates the update command with app dependencies.
func (a *App) CreateUpdateCommand() *cobra.Command {
	return update.NewCommand(a)
}

// CreateListCommand creates the list command with app dependencies.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateShowCommand creates the show command with app dependencies.
func (a *App) CreateShowCommand() *cobra.Command {
	return show.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return version.NewCommand(a, func() bool { return a.config.Verbose })
}
