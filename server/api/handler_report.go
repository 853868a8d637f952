package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/ordemia/ordemia/pkg/report"
	"github.com/ordemia/ordemia/pkg/session"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session")

	format, err := report.ParseFormat(chi.URLParam(r, "format"))

	if err != nil {
		writeError(w, http.StatusBadRequest, "Formato não suportado")
		return
	}

	result, err := h.Sessions.Get(r.Context(), sessionID)

	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Sessão não encontrada ou expirada. Processe os documentos novamente.")
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao carregar sessão")
		return
	}

	var buf bytes.Buffer

	if err := report.Generate(&buf, format, result); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao gerar relatório")
		return
	}

	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(sessionID, format)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	w.Write(buf.Bytes())
}

func (h *Handler) handleCleanup(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.Context(), chi.URLParam(r, "session")); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao limpar sessão")
		return
	}

	writeJson(w, http.StatusOK, response{
		Success: true,
	})
}
