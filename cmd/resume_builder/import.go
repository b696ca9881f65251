package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/observability"
)

var (
	importMediaType string
	importSave      bool
	importJSON      bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a resume document",
	Long: `Extract resume data from a PDF or Word document using heuristic text
extraction. Prints a summary of the extracted fields; --save replaces the
stored resume data with the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importMediaType, "media-type", "", "Override the document media type (default: from file extension)")
	importCmd.Flags().BoolVar(&importSave, "save", false, "Replace the stored resume data with the extracted data")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "Print the extracted data as JSON")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	mediaType := importMediaType
	if mediaType == "" {
		mediaType = extraction.MediaTypeForFilename(path)
	}

	resumeData, err := extraction.ParseResumeFile(mediaType, data)
	if err != nil {
		return err
	}

	if importJSON {
		encoded, err := json.MarshalIndent(resumeData, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal extracted data: %w", err)
		}
		fmt.Println(string(encoded))
	} else {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintExtractionSummary(&resumeData)
		if cfg.Verbose {
			printer.PrintResumeData(&resumeData)
		}
	}

	if !importSave {
		return nil
	}

	ctx := context.Background()
	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	st.SetResumeData(resumeData)
	fmt.Println("Saved extracted resume data.")
	return nil
}
