package api

import (
	"encoding/json"
	"net/http"

	"github.com/ordemia/ordemia/config"
	"github.com/ordemia/ordemia/pkg/order"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/upload", h.handleUpload)

	r.Get("/providers", h.handleProviders)
	r.Get("/models/{provider}", h.handleModels)

	r.Get("/generate_report/{session}/{format}", h.handleReport)
	r.Post("/cleanup/{session}", h.handleCleanup)
}

type response struct {
	Success bool `json:"success"`

	SessionID string        `json:"session_id,omitempty"`
	Results   *order.Result `json:"results,omitempty"`

	Error     string `json:"error,omitempty"`
	ShowModal bool   `json:"show_modal,omitempty"`
}

func writeJson(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, text string) {
	writeJson(w, code, response{
		Error: text,
	})
}

func writeModalError(w http.ResponseWriter, code int, text string) {
	writeJson(w, code, response{
		Error:     text,
		ShowModal: true,
	})
}
