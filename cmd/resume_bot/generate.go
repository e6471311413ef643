package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder-bot/internal/dialogue"
	"github.com/jonathan/resume-builder-bot/internal/logging"
)

var (
	genName       string
	genEmail      string
	genPhone      string
	genEducation  []string
	genExperience []string
	genSkills     string
	genProjects   []string
	genTemplate   string
	genFormat     string
	genOut        string
	genVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume without Telegram",
	Long: `Drive the same collection dialogue the bot runs, fed from flags instead
of chat messages, and write the rendered document to disk.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "", "Full name")
	generateCmd.Flags().StringVar(&genEmail, "email", "", "Email address")
	generateCmd.Flags().StringVar(&genPhone, "phone", "", "Phone number")
	generateCmd.Flags().StringArrayVar(&genEducation, "education", nil, "Education entry: 'Degree, Institution, Year' (repeatable)")
	generateCmd.Flags().StringArrayVar(&genExperience, "experience", nil, "Experience entry: 'Position, Company, Duration, Description' (repeatable)")
	generateCmd.Flags().StringVar(&genSkills, "skills", "", "Comma-separated skill list")
	generateCmd.Flags().StringArrayVar(&genProjects, "project", nil, "Project entry: 'Name, Description' (repeatable)")
	generateCmd.Flags().StringVar(&genTemplate, "template", "professional", "Template: professional, creative, academic or technical")
	generateCmd.Flags().StringVar(&genFormat, "format", "pdf", "Output format: pdf or docx")
	generateCmd.Flags().StringVar(&genOut, "out", ".", "Output directory")
	generateCmd.Flags().BoolVar(&genVerbose, "verbose", false, "Print detailed debug information")

	for _, flag := range []string{"name", "email", "phone", "skills"} {
		_ = generateCmd.MarkFlagRequired(flag)
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	log := logging.New("", genVerbose)
	defer func() { _ = log.Sync() }()

	engine := dialogue.NewEngine(
		dialogue.NewStore(time.Minute),
		dialogue.RendererFunc(renderDocument),
		log,
	)

	projects := "skip"
	if len(genProjects) > 0 {
		projects = strings.Join(genProjects, "\n")
	}

	events := []dialogue.Event{
		{Kind: dialogue.EventBuild},
		{Kind: dialogue.EventText, Text: genName},
		{Kind: dialogue.EventText, Text: genEmail},
		{Kind: dialogue.EventText, Text: genPhone},
		{Kind: dialogue.EventText, Text: strings.Join(genEducation, "\n")},
		{Kind: dialogue.EventText, Text: strings.Join(genExperience, "\n")},
		{Kind: dialogue.EventText, Text: genSkills},
		{Kind: dialogue.EventText, Text: projects},
		{Kind: dialogue.EventSelect, Selection: genTemplate},
		{Kind: dialogue.EventSelect, Selection: genFormat},
	}

	sessionID := uuid.NewString()
	var document *dialogue.Document
	for _, event := range events {
		for _, reply := range engine.ProcessInput(sessionID, event) {
			if genVerbose && reply.Text != "" {
				fmt.Println(reply.Text)
			}
			if reply.Document != nil {
				document = reply.Document
			}
		}
	}
	if document == nil {
		return fmt.Errorf("no document was produced; check the template/format values and the log output")
	}

	path := filepath.Join(genOut, document.Filename)
	if err := os.WriteFile(path, document.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Println(path)
	return nil
}
