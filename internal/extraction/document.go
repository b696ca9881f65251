package extraction

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-builder/internal/types"
)

// Supported upload media types.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDoc  = "application/msword"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MediaTypeForFilename guesses the media type from a file extension. It
// returns an empty string for unrecognized extensions.
func MediaTypeForFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MediaTypePDF
	case ".doc":
		return MediaTypeDoc
	case ".docx":
		return MediaTypeDocx
	}
	return ""
}

// ExtractText extracts the plain text of an uploaded document. The media
// type selects the decoder; anything outside the supported set fails with
// *UnsupportedTypeError.
func ExtractText(mediaType string, data []byte) (string, error) {
	switch mediaType {
	case MediaTypePDF:
		return extractPDFText(data)
	case MediaTypeDoc, MediaTypeDocx:
		return extractDocxText(data)
	default:
		return "", &UnsupportedTypeError{MediaType: mediaType}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read pdf", Cause: err}
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse docx", Cause: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// ParseResumeFile extracts text from an uploaded document and applies the
// heuristic field extraction, yielding a partial resume data structure.
func ParseResumeFile(mediaType string, data []byte) (types.ResumeData, error) {
	text, err := ExtractText(mediaType, data)
	if err != nil {
		return types.ResumeData{}, err
	}
	return ExtractResumeData(text), nil
}
