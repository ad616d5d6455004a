package cmd

import (
	"github.com/alecthomas/kong"
	"github.com/jimezsa/askmcp/internal/adapters"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	Serve   ServeCmd   `cmd:"" help:"Serve one tool over MCP stdio."`
	Ask     AskCmd     `cmd:"" help:"Ask a tool one question and print the answer."`
	List    ListCmd    `cmd:"" help:"List raw job applications or interview schedules."`
}

func NewCLI() *CLI {
	return &CLI{
		Serve: ServeCmd{
			Weather:      ServeToolCmd{Tool: adapters.Weather},
			Applications: ServeToolCmd{Tool: adapters.Applications},
			Schedules:    ServeToolCmd{Tool: adapters.Schedules},
		},
	}
}
