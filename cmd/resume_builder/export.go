package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/templates"
)

var (
	exportOut          string
	exportTemplateID   string
	exportAllTemplates bool
	exportHTML         bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume to PDF",
	Long: `Render the stored resume data through a visual template and print it to
a PDF file using a headless browser. --all-templates exports one file per
built-in template.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportTemplateID, "template", "", "Template ID (default: the active template)")
	exportCmd.Flags().BoolVar(&exportAllTemplates, "all-templates", false, "Export every available template")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "Write the rendered HTML instead of PDF")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", exportOut, err)
	}

	var selected []templates.ResumeTemplate
	if exportAllTemplates {
		selected = st.AvailableTemplates()
	} else {
		tmpl := st.ActiveTemplate()
		if exportTemplateID != "" {
			tmpl = templates.Lookup(st.AvailableTemplates(), exportTemplateID)
		}
		selected = []templates.ResumeTemplate{tmpl}
	}

	data := st.ResumeData()
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResumeData(&data)
	}
	renderer := rendering.NewPDFRenderer(cfg.ChromePath)

	g, gctx := errgroup.WithContext(ctx)
	for _, tmpl := range selected {
		g.Go(func() error {
			html, err := rendering.RenderHTML(data, &tmpl)
			if err != nil {
				return err
			}

			if exportHTML {
				path := filepath.Join(exportOut, "resume-"+tmpl.ID+".html")
				if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Printf("Wrote %s\n", path)
				return nil
			}

			pdf, err := renderer.RenderPDF(gctx, html)
			if err != nil {
				return err
			}
			path := filepath.Join(exportOut, "resume-"+tmpl.ID+".pdf")
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}

	return g.Wait()
}
