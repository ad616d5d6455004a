package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/askmcp/internal/adapters"
	"github.com/jimezsa/askmcp/internal/tool"
)

type AskCmd struct {
	Tool     string `arg:"" help:"Tool to ask: weather, applications, schedules."`
	Question string `short:"q" required:"" help:"Question to ask."`
	City     string `help:"City to look up (weather only)."`
}

func (a *AskCmd) Run(ctx *Context) error {
	services, err := ctx.services()
	if err != nil {
		return err
	}
	svc, err := adapters.Lookup(services, a.Tool)
	if err != nil {
		return err
	}

	result := svc.Call(context.Background(), a.arguments())

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		ctx.UI.Answer(tool.Text(result), result.IsError)
	}

	if result.IsError {
		return fmt.Errorf("%s failed", svc.Name)
	}
	return nil
}

func (a *AskCmd) arguments() map[string]any {
	args := map[string]any{"question": a.Question}
	if city := strings.TrimSpace(a.City); city != "" {
		args["city"] = city
	}
	return args
}
