package pdf

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// PopplerExtractor delegates text extraction to the external pdftotext
// binary. The PDF parsing itself stays outside this codebase.
type PopplerExtractor struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
}

func NewPopplerExtractor() *PopplerExtractor { return &PopplerExtractor{} }

func (e *PopplerExtractor) ExtractText(ctx context.Context, fileBytes []byte) (string, error) {
	bin := e.Binary
	if bin == "" {
		bin = "pdftotext"
	}

	// read from stdin, write to stdout
	cmd := exec.CommandContext(ctx, bin, "-", "-")
	cmd.Stdin = bytes.NewReader(fileBytes)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", ErrUnreadablePDF
	}

	text := out.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrUnreadablePDF
	}
	return text, nil
}
