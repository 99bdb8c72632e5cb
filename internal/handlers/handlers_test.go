package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/resume-ats/internal/repositories"
	"alfredoptarigan/resume-ats/internal/services"
)

type upload struct {
	name        string
	contentType string
	content     []byte
}

func newTestApp(t *testing.T, recorder repositories.AnalysisRecorder, loader services.ModelLoader) *fiber.App {
	t.Helper()
	log := zaptest.NewLogger(t)
	metrics := services.NewMetrics()

	analyzer := services.NewAnalyzerService(
		services.NewTextExtractor(services.NewPDFParserService()),
		recorder,
		metrics,
		log,
	)
	composer := services.NewComposerService(services.NewModelHandle(loader, metrics, log), metrics)

	analyzeHandler := NewAnalyzeHandler(analyzer, services.NewUploadService(64), "Python, SQL, Machine Learning", 3)
	composeHandler := NewComposeHandler(composer)
	generateHandler := NewGenerateHandler(composer)
	historyHandler := NewHistoryHandler(recorder)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	api := app.Group("/api/v1")
	api.Post("/compose", composeHandler.HandleCompose)
	api.Post("/compose/download", composeHandler.HandleDownload)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/analyses", historyHandler.HandleListAnalyses)
	api.Get("/analyses/:id", historyHandler.HandleGetAnalysis)
	api.Post("/generate", generateHandler.HandleGenerate)
	return app
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files ...upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}
