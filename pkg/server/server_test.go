package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/de-tools/shift-report/pkg/models/api"
	"github.com/de-tools/shift-report/pkg/render/pdf"
	"github.com/de-tools/shift-report/pkg/store/filestore"
	"github.com/de-tools/shift-report/pkg/store/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	local, err := filestore.NewLocal(t.TempDir())
	require.NoError(t, err)

	webAPI := NewWebAPI(zerolog.New(zerolog.NewTestWriter(t)), Config{
		Addr:    ":0",
		Version: "1.0.0",
		Dependencies: Dependencies{
			Records:  memory.NewRecordStore(),
			Renderer: pdf.NewRenderer(),
			Files:    local,
		},
	})

	ts := httptest.NewServer(webAPI.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	health := decodeBody[api.Health](t, resp)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "1.0.0", health.Version)
	assert.False(t, health.Timestamp.IsZero())
	assert.NotEmpty(t, health.Message)
}

func TestRecordLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Empty object is rejected before touching the store.
	resp := postJSON(t, ts.URL+"/records", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	failure := decodeBody[api.Error](t, resp)
	assert.Equal(t, "no data provided", failure.Error)

	// Three saves get sequential ids.
	for i, operator := range []string{"Alice", "Bob", "Carol"} {
		resp := postJSON(t, ts.URL+"/records", `{"operador":"`+operator+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		saved := decodeBody[api.RecordSaved](t, resp)
		assert.True(t, saved.Success)
		assert.Equal(t, i+1, saved.ID)
		assert.False(t, saved.Timestamp.IsZero())
	}

	resp, err := http.Get(ts.URL + "/records")
	require.NoError(t, err)
	list := decodeBody[api.RecordList](t, resp)
	assert.Equal(t, 3, list.Total)
	require.Len(t, list.Records, 3)
	assert.Equal(t, "Alice", list.Records[0].Data["operador"])

	resp, err = http.Get(ts.URL + "/records/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	envelope := decodeBody[api.RecordEnvelope](t, resp)
	assert.Equal(t, 2, envelope.Record.ID)
	assert.Equal(t, "Bob", envelope.Record.Data["operador"])

	resp, err = http.Get(ts.URL + "/records/99")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/records/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGeneratePDF(t *testing.T) {
	ts := newTestServer(t)

	payload := `{
		"operador": "Alice",
		"data": "2024-03-01",
		"tempoEfetivo": "07:30",
		"toneladas": 150,
		"paradas": [
			{"inicio": "08:00", "fim": "09:30", "motivo": "Falha", "duracao": "01:30"},
			{"inicio": "14:00", "fim": "14:30", "motivo": "Falha", "duracao": "00:30"}
		]
	}`

	resp := postJSON(t, ts.URL+"/reports/pdf", payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Greater(t, len(body), 5)
	assert.Equal(t, "%PDF-", string(body[:5]))
}

func TestGeneratePDFRejectsEmptyBody(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/reports/pdf", ``)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	failure := decodeBody[api.Error](t, resp)
	assert.Equal(t, "no data provided", failure.Error)
}

func TestFileUploadAndDownload(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "relatorio.pdf")
	require.NoError(t, err)
	_, err = io.WriteString(part, "%PDF-1.4 fake")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/files", writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stored := decodeBody[api.FileStored](t, resp)
	require.True(t, stored.Success)

	fileURL, err := url.Parse(stored.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fileURL.Path, "/files/"))

	resp, err = http.Get(ts.URL + fileURL.Path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(content))
}

func TestFileDownloadMissing(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/files/missing.pdf")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	failure := decodeBody[api.Error](t, resp)
	assert.Equal(t, "file not found", failure.Error)
}
