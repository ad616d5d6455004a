package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jimezsa/askmcp/internal/adapters"
	"github.com/jimezsa/askmcp/internal/export"
	"github.com/muesli/termenv"
)

type ListCmd struct {
	Source string `arg:"" enum:"applications,schedules" help:"What to list: applications or schedules."`
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
	Output string `name:"output" short:"o" help:"Write output to a file."`
}

func (l *ListCmd) Run(ctx *Context) error {
	client, err := ctx.careersClient()
	if err != nil {
		return err
	}

	var table export.Table
	switch l.Source {
	case adapters.Applications:
		apps, err := client.Applications(context.Background())
		if err != nil {
			return err
		}
		table = export.Applications(apps)
	case adapters.Schedules:
		schedules, err := client.Schedules(context.Background())
		if err != nil {
			return err
		}
		table = export.Schedules(schedules)
	default:
		return fmt.Errorf("unknown source: %s", l.Source)
	}

	format, err := resolveFormat(ctx, l.Format, l.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if l.Output != "" {
		file, err := os.Create(l.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && l.Output == ""
	if err := export.Write(writer, table, format, export.WriteOptions{ColorEnabled: colorEnabled}); err != nil {
		return err
	}

	if l.Output != "" && ctx.UI != nil {
		ctx.UI.Successf("Wrote %d %s to %s", len(table.Rows), l.Source, l.Output)
	}
	return nil
}

func resolveFormat(ctx *Context, format string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if strings.TrimSpace(format) != "" {
		return export.ParseFormat(format)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
