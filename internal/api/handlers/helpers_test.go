package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"zk-salon-api-server/config"
	"zk-salon-api-server/internal/api/routes"
	"zk-salon-api-server/internal/imagestore"
	"zk-salon-api-server/internal/mailer"
	"zk-salon-api-server/internal/socket"
	"zk-salon-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testEnv is a fully wired router over a throwaway document store and a local
// image store.
type testEnv struct {
	router *gin.Engine
	store  *store.Store
	dir    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := config.Config{
		Storage: config.StorageConfig{File: filepath.Join(dir, "db.json")},
		Uploads: config.UploadsConfig{Mode: "local", Dir: filepath.Join(dir, "uploads"), BaseURL: "/uploads/images"},
		Static:  config.StaticConfig{AdminDir: dir, FrontendDir: dir},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:8000"}},
	}

	st := store.New(cfg.Storage.File, nil)
	images, err := imagestore.New(cfg)
	require.NoError(t, err)

	router := routes.SetupRouter(st, images, mailer.New(cfg.Email), socket.NewHub(), cfg)
	return &testEnv{router: router, store: st, dir: dir}
}

// seed overwrites the stored document.
func (e *testEnv) seed(t *testing.T, doc *store.Document) {
	t.Helper()
	require.NoError(t, e.store.Save(doc))
}

// doc reloads the stored document.
func (e *testEnv) doc(t *testing.T) *store.Document {
	t.Helper()
	doc, err := e.store.Load()
	require.NoError(t, err)
	return doc
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, method, path string, fields map[string]string, file *filePart) *httptest.ResponseRecorder {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, "image", file.name))
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type filePart struct {
	name        string
	contentType string
	data        []byte
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
