package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"logistik-dashboard/internal/api/dto"
	"logistik-dashboard/internal/api/views"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/services"
)

// FeatureHandler serves the landing page and its feature tiles.
type FeatureHandler struct {
	Launcher *services.FeatureLauncher
	Views    *views.Renderer
	Log      logger.ILogger
}

func (h *FeatureHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, services.Notice{})
}

// Activate handles a tile click. The page comes back with the notice as a toast.
func (h *FeatureHandler) Activate(w http.ResponseWriter, r *http.Request) {
	features := h.Launcher.Features()

	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 || idx >= len(features) {
		h.render(w, r, http.StatusNotFound, services.Notice{
			Kind:    services.NoticeError,
			Message: "Unbekannter Bereich.",
		})
		return
	}

	notice := h.Launcher.Activate(features[idx].Title)
	h.Log.Debug("feature activated", logger.String("title", features[idx].Title))

	h.render(w, r, http.StatusOK, notice)
}

func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	features := h.Launcher.Features()

	res := dto.ListFeaturesResponse{
		Features: make([]dto.FeatureResponse, 0, len(features)),
	}
	for i, f := range features {
		res.Features = append(res.Features, dto.FeatureResponse{
			Index:       i,
			Title:       f.Title,
			Description: f.Description,
			Icon:        f.Icon,
		})
	}

	writeJSON(h.Log, w, r, http.StatusOK, res)
}

func (h *FeatureHandler) render(w http.ResponseWriter, r *http.Request, status int, notice services.Notice) {
	writePage(h.Log, h.Views, w, r, status, views.PageLanding, views.LandingPage{
		Features: h.Launcher.Features(),
		Notice:   notice,
	})
}
