package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasnim.dev/s3ls/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cmd.NewRootCmd(cmd.DefaultSource)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
