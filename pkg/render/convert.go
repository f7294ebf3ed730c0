package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Tool is an external compiler that produces PDF from a source document.
type Tool string

const (
	PDFLaTeX  Tool = "pdflatex"
	Asymptote Tool = "asy"
)

// ToPDF compiles src with tool in a scratch directory and returns the PDF.
// Requires TeX Live (pdflatex) or Asymptote (asy) on PATH.
func ToPDF(ctx context.Context, tool Tool, src []byte) ([]byte, error) {
	var input, job string
	var args []string
	switch tool {
	case PDFLaTeX:
		input, job = "main.tex", "main-tex"
		args = []string{"-interaction=nonstopmode", "-halt-on-error", "-jobname", job, input}
	case Asymptote:
		input, job = "main.asy", "main-asy"
		args = []string{"-f", "pdf", input, "-o", job}
	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}

	if _, err := exec.LookPath(string(tool)); err != nil {
		return nil, fmt.Errorf("pdf export requires %s. Install with:\n  macOS:  brew install %s\n  Linux:  apt install %s",
			tool, installHint(tool, "mac"), installHint(tool, "linux"))
	}

	dir, err := os.MkdirTemp("", "fundomain-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, input), src, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", input, err)
	}

	cmd := exec.CommandContext(ctx, string(tool), args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", tool, err, out.String())
	}
	return os.ReadFile(filepath.Join(dir, job+".pdf"))
}

func installHint(tool Tool, platform string) string {
	switch {
	case tool == PDFLaTeX && platform == "mac":
		return "--cask mactex"
	case tool == PDFLaTeX:
		return "texlive-latex-extra"
	default:
		return "asymptote"
	}
}
