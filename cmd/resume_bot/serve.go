package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder-bot/internal/config"
	"github.com/jonathan/resume-builder-bot/internal/dialogue"
	"github.com/jonathan/resume-builder-bot/internal/logging"
	"github.com/jonathan/resume-builder-bot/internal/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot against the Telegram API",
	Long:  `Start long-polling Telegram for messages and button presses, driving the resume collection dialogue until interrupted.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.LogFile, cfg.Verbose)
	defer func() { _ = log.Sync() }()

	engine := dialogue.NewEngine(
		dialogue.NewStore(cfg.SessionTTL),
		dialogue.RendererFunc(renderDocument),
		log,
	)

	bot, err := telegram.New(cfg.Token, engine, log)
	if err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bot.Run(ctx)
}
