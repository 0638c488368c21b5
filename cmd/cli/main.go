package main

import (
	"context"
	"healthrecord-service/internal/app/config"
	"healthrecord-service/internal/app/delivery/cli"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand(config.NewClientConfig())
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
