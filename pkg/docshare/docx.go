package docshare

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// DocxContentType is the MIME type for Word documents
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocxFilename is the attachment filename used by the share flow
const DocxFilename = "meeting-summary.docx"

// RenderSummaryDocx renders a summary into a .docx document with a
// "Meeting Summary" title heading followed by the body text, one
// paragraph per line.
func RenderSummaryDocx(title, summary string) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	heading := w.AddParagraph()
	heading.AddText(title).Size("36")

	for _, line := range strings.Split(summary, "\n") {
		p := w.AddParagraph()
		p.AddText(line)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render docx: %w", err)
	}
	return buf.Bytes(), nil
}
