package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ordemia/ordemia/config"
	"github.com/ordemia/ordemia/pkg/order"
	"github.com/ordemia/ordemia/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*config.Config, *httptest.Server) {
	t.Helper()

	cfg, err := config.Parse("")
	require.NoError(t, err)

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", h.Attach)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return cfg, server
}

func uploadRequest(t *testing.T, url string, fields map[string]string, files map[string][]byte) *http.Response {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	resp, err := http.Post(url+"/api/upload", writer.FormDataContentType(), &body)
	require.NoError(t, err)

	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	return result
}

func TestUploadMissingKey(t *testing.T) {
	_, server := testServer(t)

	resp := uploadRequest(t, server.URL, map[string]string{"provider": "openai"}, map[string][]byte{"a.pdf": []byte("%PDF-")})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Equal(t, false, body["success"])
	require.Contains(t, body["error"], "Chave API")
}

func TestUploadInvalidKeyFormat(t *testing.T) {
	_, server := testServer(t)

	resp := uploadRequest(t, server.URL, map[string]string{
		"provider": "anthropic",
		"api_key":  "sk-not-anthropic",
	}, map[string][]byte{"a.pdf": []byte("%PDF-")})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Equal(t, true, body["show_modal"])
}

func TestUploadNoFiles(t *testing.T) {
	_, server := testServer(t)

	resp := uploadRequest(t, server.URL, map[string]string{
		"provider": "openai",
		"api_key":  "sk-test123",
	}, nil)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Contains(t, body["error"], "Nenhum arquivo")
}

func TestUploadUnsupportedExtension(t *testing.T) {
	_, server := testServer(t)

	resp := uploadRequest(t, server.URL, map[string]string{
		"provider": "openai",
		"api_key":  "sk-test123",
	}, map[string][]byte{"a.docx": []byte("data")})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Contains(t, body["error"], "não suportado")
}

func TestProviders(t *testing.T) {
	_, server := testServer(t)

	resp, err := http.Get(server.URL + "/api/providers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Equal(t, true, body["success"])
	require.Len(t, body["providers"], 10)
}

func TestModels(t *testing.T) {
	_, server := testServer(t)

	resp, err := http.Get(server.URL + "/api/models/groq")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Equal(t, "mixtral-8x7b-32768", body["default"])

	resp, err = http.Get(server.URL + "/api/models/unknown")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestReport(t *testing.T) {
	cfg, server := testServer(t)

	result := &order.Result{
		Products: []order.Product{
			{Description: "Caneta", Quantity: 15, UnitValue: 2.5, TotalValue: 32.5, Sources: []string{"a.pdf"}},
		},

		TotalProducts: 1,
		TotalValue:    32.5,
	}

	require.NoError(t, cfg.Sessions.Put(t.Context(), "sess-1", result, time.Hour))

	resp, err := http.Get(server.URL + "/api/generate_report/sess-1/csv")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "pedido_compra_sess-1.csv")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(data), "PEDIDO DE COMPRA CONSOLIDADO")
	require.Contains(t, string(data), "Caneta")
}

func TestReportUnknownSession(t *testing.T) {
	_, server := testServer(t)

	resp, err := http.Get(server.URL + "/api/generate_report/missing/pdf")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.Contains(t, body["error"], "Sessão")
}

func TestReportInvalidFormat(t *testing.T) {
	_, server := testServer(t)

	resp, err := http.Get(server.URL + "/api/generate_report/sess-1/docx")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCleanup(t *testing.T) {
	cfg, server := testServer(t)

	require.NoError(t, cfg.Sessions.Put(t.Context(), "sess-1", &order.Result{}, time.Hour))

	resp, err := http.Post(server.URL+"/api/cleanup/sess-1", "", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/api/generate_report/sess-1/csv")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
