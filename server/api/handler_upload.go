package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/ordemia/ordemia/config"
	"github.com/ordemia/ordemia/pkg/batch"

	"github.com/google/uuid"
)

var allowedExtensions = []string{
	".pdf",
	".png",
	".jpg",
	".jpeg",
	".txt",
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	provider := r.FormValue("provider")
	model := r.FormValue("model")
	apiKey := r.FormValue("api_key")

	if provider == "" {
		provider = "openai"
	}

	if apiKey == "" {
		writeError(w, http.StatusBadRequest, "Chave API é obrigatória")
		return
	}

	completer, err := h.Completer(provider, model, apiKey)

	if errors.Is(err, config.ErrInvalidKey) {
		writeModalError(w, http.StatusBadRequest, fmt.Sprintf("Formato de chave API inválido para %s. Verifique se a chave está correta.", provider))
		return
	}

	if err != nil {
		writeError(w, http.StatusBadRequest, "Provedor de IA desconhecido: "+provider)
		return
	}

	headers := r.MultipartForm.File["files"]

	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "Nenhum arquivo enviado")
		return
	}

	if len(headers) > h.MaxFiles {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Máximo de %d arquivos permitidos", h.MaxFiles))
		return
	}

	var files []batch.File

	for _, header := range headers {
		if header.Filename == "" {
			continue
		}

		ext := strings.ToLower(path.Ext(header.Filename))

		if !slices.Contains(allowedExtensions, ext) {
			writeError(w, http.StatusBadRequest, "Formato de arquivo não suportado: "+header.Filename)
			return
		}

		if header.Size > h.MaxFileSize {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Arquivo muito grande: %s. Máximo %dMB", header.Filename, h.MaxFileSize>>20))
			return
		}

		file, err := header.Open()

		if err != nil {
			writeError(w, http.StatusInternalServerError, "Erro ao ler arquivo: "+header.Filename)
			return
		}

		content, err := io.ReadAll(file)
		file.Close()

		if err != nil {
			writeError(w, http.StatusInternalServerError, "Erro ao ler arquivo: "+header.Filename)
			return
		}

		files = append(files, batch.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),

			Content: content,
		})
	}

	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "Nenhum arquivo válido encontrado")
		return
	}

	processor := batch.New(completer, h.Extractor,
		batch.WithConcurrency(h.Concurrency),
		batch.WithTimeout(h.Timeout),
		batch.WithMaxFileSize(h.MaxFileSize),
	)

	result, err := processor.Run(r.Context(), files)

	if batch.IsAuth(err) {
		writeModalError(w, http.StatusUnauthorized, "Erro de autenticação. A chave API é inválida ou não tem créditos.")
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro no processamento dos documentos")
		return
	}

	sessionID := uuid.NewString()

	if err := h.Sessions.Put(r.Context(), sessionID, result, h.SessionTTL); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao armazenar resultado")
		return
	}

	writeJson(w, http.StatusOK, response{
		Success: true,

		SessionID: sessionID,
		Results:   result,
	})
}
