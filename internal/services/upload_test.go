package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-ats/internal/models"
)

type testFile struct {
	name        string
	contentType string
	content     string
}

func multipartFiles(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["files"]
}

func TestUploadService_ReadFiles(t *testing.T) {
	svc := NewUploadService(1024)
	headers := multipartFiles(t,
		testFile{"b.txt", "text/plain", "Python"},
		testFile{"a.html", "text/html", "<p>SQL</p>"},
		testFile{"c.pdf", "", "%PDF-"},
	)

	docs := svc.ReadFiles(headers)

	require.Len(t, docs, 3)
	assert.Equal(t, "b.txt", docs[0].Name)
	assert.Equal(t, models.KindPlainText, docs[0].Kind)
	assert.Equal(t, []byte("Python"), docs[0].Content)
	assert.Equal(t, models.KindHTML, docs[1].Kind)
	assert.Equal(t, models.KindPDF, docs[2].Kind, "extension decides when no type is declared")
	for _, d := range docs {
		assert.NoError(t, d.Err)
	}
}

func TestUploadService_TooLarge(t *testing.T) {
	svc := NewUploadService(4)
	headers := multipartFiles(t,
		testFile{"big.txt", "text/plain", "way more than four bytes"},
		testFile{"ok.txt", "text/plain", "Go"},
	)

	docs := svc.ReadFiles(headers)

	require.Len(t, docs, 2)
	assert.ErrorIs(t, docs[0].Err, ErrFileTooLarge)
	assert.Nil(t, docs[0].Content)
	assert.NoError(t, docs[1].Err)
	assert.Equal(t, []byte("Go"), docs[1].Content)
}
