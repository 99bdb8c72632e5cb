package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-ats/internal/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrInvalidEncoding = errors.New("document is not valid UTF-8 text")
)

type TextExtractor interface {
	Extract(doc models.UploadedDocument) (string, error)
}

type textExtractor struct {
	pdfParser PDFParserService
}

func NewTextExtractor(pdfParser PDFParserService) TextExtractor {
	return &textExtractor{pdfParser: pdfParser}
}

// Extract implements TextExtractor. HTML is returned verbatim, markup included, so
// tag names and attributes take part in matching.
func (e *textExtractor) Extract(doc models.UploadedDocument) (string, error) {
	switch doc.Kind {
	case models.KindPDF:
		return e.pdfParser.ExtractText(doc.Content)
	case models.KindHTML, models.KindPlainText:
		return decodeUTF8(doc.Content)
	case models.KindDOCX:
		return extractDocxText(doc.Content)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, doc.ContentType)
	}
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return wordprocessingText(doc.Editable().GetContent())
}

// wordprocessingText keeps only the text runs of a word/document.xml body. Runs are
// joined as written and every paragraph ends with a newline.
func wordprocessingText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse docx body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

var mimeKinds = map[string]models.DocumentKind{
	models.MIMEPlainText: models.KindPlainText,
	models.MIMEPDF:       models.KindPDF,
	models.MIMEHTML:      models.KindHTML,
	models.MIMEDOCX:      models.KindDOCX,
}

var extensionKinds = map[string]models.DocumentKind{
	".txt":  models.KindPlainText,
	".pdf":  models.KindPDF,
	".html": models.KindHTML,
	".htm":  models.KindHTML,
	".docx": models.KindDOCX,
}

// ResolveKind maps a declared content type to a DocumentKind. The file extension is
// consulted only when the client sent no useful type.
func ResolveKind(contentType, filename string) models.DocumentKind {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	if mediaType != "" && mediaType != "application/octet-stream" {
		return mimeKinds[mediaType]
	}

	return extensionKinds[strings.ToLower(filepath.Ext(filename))]
}
