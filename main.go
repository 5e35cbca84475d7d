package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rakhulsr/go-restaurant/app/cmd"
	"github.com/Rakhulsr/go-restaurant/app/configs"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.RunCli(ctx, os.Args, env, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		stop()
		logger.Sync()
		os.Exit(1)
	}
}
