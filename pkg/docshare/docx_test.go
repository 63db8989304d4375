package docshare

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummaryDocx(t *testing.T) {
	doc, err := RenderSummaryDocx("Meeting Summary", "The team agreed to ship on Friday.\nBob owns the release.")
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	// A .docx is a zip archive with the document body at word/document.xml
	zr, err := zip.NewReader(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)

	var body string
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			rc.Close()
			require.NoError(t, err)
			body = string(content)
		}
	}

	require.NotEmpty(t, body, "word/document.xml missing from archive")
	assert.Contains(t, body, "Meeting Summary")
	assert.Contains(t, body, "The team agreed to ship on Friday.")
	assert.Contains(t, body, "Bob owns the release.")
}
