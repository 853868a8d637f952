package api

import (
	"net/http"

	"github.com/ordemia/ordemia/pkg/catalog"

	"github.com/go-chi/chi/v5"
)

type providerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Models  []string `json:"models"`
	Default string   `json:"default"`
}

func (h *Handler) handleProviders(w http.ResponseWriter, r *http.Request) {
	var providers []providerInfo

	for _, p := range catalog.Providers() {
		providers = append(providers, providerInfo{
			ID:   p.ID,
			Name: p.Name,

			Models:  p.Models,
			Default: p.Default,
		})
	}

	writeJson(w, http.StatusOK, map[string]any{
		"success":   true,
		"providers": providers,
	})
}

func (h *Handler) handleModels(w http.ResponseWriter, r *http.Request) {
	p, err := catalog.Lookup(chi.URLParam(r, "provider"))

	if err != nil {
		writeError(w, http.StatusBadRequest, "Provedor de IA desconhecido")
		return
	}

	writeJson(w, http.StatusOK, map[string]any{
		"success": true,
		"models":  p.Models,
		"default": p.Default,
	})
}
