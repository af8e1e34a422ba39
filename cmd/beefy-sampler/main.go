package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/babylonlabs-io/beefy-sampler/cmd/beefy-sampler/commands"
	"github.com/babylonlabs-io/beefy-sampler/metrics"
)

func main() {
	cmd := commands.NewRootCmd(metrics.NewSamplerMetrics())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := commands.Execute(ctx, cmd); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error while executing %s CLI: %s\n", commands.BinaryName, err.Error())
		os.Exit(1) //nolint:gocritic
	}
}
