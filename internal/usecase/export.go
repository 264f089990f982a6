package usecase

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
)

// ErrDeployNotImplemented is the typed result of the deploy action. The
// message is user-facing; no network operation is attempted.
var ErrDeployNotImplemented = errors.New("deploy: deployment functionality is not implemented yet; download the archive and deploy it manually")

const exportReadme = `# Portfolio Website
This portfolio website was generated using the Portfolio Builder application.
To run this website locally, simply open the index.html file in your web browser.`

// ExportArchive packages the generated site markup into a downloadable zip
// with exactly two entries: the entry page and a readme.
func ExportArchive(siteHTML string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		body string
	}{
		{"index.html", siteHTML},
		{"README.md", exportReadme},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("export: create %s: %w", e.name, err)
		}
		if _, err := w.Write([]byte(e.body)); err != nil {
			return nil, fmt.Errorf("export: write %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("export: finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Deploy always reports the informational not-implemented result.
func Deploy() error {
	return ErrDeployNotImplemented
}
