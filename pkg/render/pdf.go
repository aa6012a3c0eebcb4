package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// PDFEngine converts rendered HTML into a PDF document.
type PDFEngine interface {
	HTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// execEngine shells out to a headless browser binary for conversion.
type execEngine struct {
	command string
}

// NewExecEngine returns a PDFEngine backed by an external converter binary
// (a headless Chromium works). The binary must support --print-to-pdf.
func NewExecEngine(command string) PDFEngine {
	return &execEngine{command: command}
}

func (e *execEngine) HTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "report-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "report.html")
	pdfPath := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write report html: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.command,
		"--headless",
		"--disable-gpu",
		"--no-sandbox",
		"--print-to-pdf="+pdfPath,
		htmlPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdf conversion failed: %w: %s", err, string(out))
	}

	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read converted pdf: %w", err)
	}
	return pdf, nil
}
