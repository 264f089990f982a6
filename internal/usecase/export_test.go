package usecase

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportArchiveContainsExactlyTwoEntries(t *testing.T) {
	const site = "<html><body>hi</body></html>"

	data, err := ExportArchive(site)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	contents := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[f.Name] = string(b)
	}

	assert.Equal(t, site, contents["index.html"])
	assert.Contains(t, contents["README.md"], "Portfolio Website")
	assert.Contains(t, contents["README.md"], "open the index.html file")
}

func TestDeployNotImplemented(t *testing.T) {
	err := Deploy()
	assert.ErrorIs(t, err, ErrDeployNotImplemented)
	assert.Contains(t, err.Error(), "not implemented")
}
