package models

// DocumentKind is the closed set of upload formats the analyzer can read.
type DocumentKind string

const (
	KindUnknown   DocumentKind = ""
	KindPlainText DocumentKind = "text"
	KindPDF       DocumentKind = "pdf"
	KindHTML      DocumentKind = "html"
	KindDOCX      DocumentKind = "docx"
)

const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEHTML      = "text/html"
	MIMEDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

func (k DocumentKind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k)
}

// UploadedDocument is a single file from an analysis request. It lives only for the
// duration of that request.
type UploadedDocument struct {
	Name        string
	ContentType string
	Kind        DocumentKind
	Content     []byte
	// Err is set when the upload itself could not be read, e.g. it exceeded the size
	// limit. Such documents are reported as failures without extraction.
	Err error
}
