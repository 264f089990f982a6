// Package pdf defines the consumed interface for resume text extraction.
// The extraction itself is an external collaborator; this core only depends
// on the plain text it produces.
package pdf

import (
	"context"
	"errors"
)

// ErrUnreadablePDF is returned when the uploaded bytes cannot be read as a
// PDF document.
var ErrUnreadablePDF = errors.New("pdf: file is not a readable PDF")

type TextExtractor interface {
	ExtractText(ctx context.Context, fileBytes []byte) (string, error)
}
