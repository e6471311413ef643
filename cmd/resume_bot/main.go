// Package main provides the entry point for the Resume Builder bot.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder-bot/internal/dialogue"
	"github.com/jonathan/resume-builder-bot/internal/rendering"
	"github.com/jonathan/resume-builder-bot/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "resume_bot",
	Short: "Resume Builder Telegram bot",
	Long:  "Resume Builder collects career details through a guided Telegram dialogue and renders them into a styled PDF or DOCX resume with derived summary, skills, and job suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderDocument bridges the document renderer into the dialogue engine.
func renderDocument(resume *types.Resume) (*dialogue.Document, error) {
	doc, err := rendering.Render(resume)
	if err != nil {
		return nil, err
	}
	return &dialogue.Document{Data: doc.Data, Filename: doc.Filename}, nil
}
