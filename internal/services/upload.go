package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"alfredoptarigan/resume-ats/internal/models"
)

var ErrFileTooLarge = errors.New("file too large")

type UploadService interface {
	ReadFile(file *multipart.FileHeader) models.UploadedDocument
	ReadFiles(files []*multipart.FileHeader) []models.UploadedDocument
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{maxFileSize: maxFileSize}
}

// ReadFile loads an uploaded file into memory. Problems are attached to the returned
// document instead of returned, so one bad file never stops the others.
func (s *uploadService) ReadFile(file *multipart.FileHeader) models.UploadedDocument {
	contentType := file.Header.Get("Content-Type")
	doc := models.UploadedDocument{
		Name:        file.Filename,
		ContentType: contentType,
		Kind:        ResolveKind(contentType, file.Filename),
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		doc.Err = fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
		return doc
	}

	src, err := file.Open()
	if err != nil {
		doc.Err = fmt.Errorf("failed to open uploaded file: %w", err)
		return doc
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		doc.Err = fmt.Errorf("failed to read uploaded file: %w", err)
		return doc
	}

	doc.Content = content
	return doc
}

func (s *uploadService) ReadFiles(files []*multipart.FileHeader) []models.UploadedDocument {
	docs := make([]models.UploadedDocument, 0, len(files))
	for _, file := range files {
		docs = append(docs, s.ReadFile(file))
	}
	return docs
}
