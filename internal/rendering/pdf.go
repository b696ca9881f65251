package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// pdfTimeout bounds a single headless-browser export, browser startup
// included.
const pdfTimeout = 60 * time.Second

// PDFRenderer exports rendered HTML to PDF through a headless browser.
type PDFRenderer struct {
	chromePath string
}

// NewPDFRenderer creates a PDF renderer. chromePath optionally overrides
// the browser binary; empty uses chromedp's default lookup (or CHROME_PATH).
func NewPDFRenderer(chromePath string) *PDFRenderer {
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	return &PDFRenderer{chromePath: chromePath}
}

// RenderPDF prints the given HTML document to a US Letter PDF.
func (r *PDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfTimeout)
	defer cancelRun()

	// Navigate to a file URL; data URLs hit size limits with large
	// documents.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, &PDFError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &PDFError{Message: "failed to write temp html", Cause: err}
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// US Letter: 8.5in x 11in
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PDFError{Message: "failed to print to pdf", Cause: err}
	}
	return pdfBuf, nil
}
