package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jimezsa/askmcp/internal/adapters"
)

type ServeCmd struct {
	Weather      ServeToolCmd `cmd:"" help:"Serve askWeather."`
	Applications ServeToolCmd `cmd:"" help:"Serve askJobApplications."`
	Schedules    ServeToolCmd `cmd:"" help:"Serve askSchedules."`
}

type ServeToolCmd struct {
	Tool string `kong:"-"`
}

func (s *ServeToolCmd) Run(ctx *Context) error {
	services, err := ctx.services()
	if err != nil {
		return err
	}
	svc, err := adapters.Lookup(services, s.Tool)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return svc.Serve(runCtx, svc.Info, ctx.In, ctx.Out)
}
