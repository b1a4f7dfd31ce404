package business

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bookmehq/bookme-server/internal/describe"
	"github.com/bookmehq/bookme-server/pkg/logging"
	"github.com/go-chi/chi/v5"
)

// ConfigStore abstracts profile persistence for the handler.
type ConfigStore interface {
	Get(ctx context.Context) (*Config, error)
	Set(ctx context.Context, cfg *Config) error
}

// Handler provides the owner dashboard endpoints plus the public profile
// endpoint consumed by the booking page.
type Handler struct {
	store     ConfigStore
	generator describe.Generator
	logger    *logging.Logger
}

// NewHandler creates a business config HTTP handler. generator may be nil
// when no text-generation credential is configured.
func NewHandler(store ConfigStore, generator describe.Generator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:     store,
		generator: generator,
		logger:    logger,
	}
}

// AdminRoutes returns a chi router with the dashboard editing routes.
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/config", h.GetConfig)
	r.Put("/config", h.UpdateProfile)
	r.Post("/services", h.CreateService)
	r.Patch("/services/{serviceID}", h.UpdateService)
	r.Delete("/services/{serviceID}", h.DeleteService)
	r.Post("/services/{serviceID}/describe", h.GenerateDescription)
	r.Patch("/availability/{day}", h.UpdateAvailability)
	return r
}

// GetConfig returns the business profile.
// GET /config and GET /admin/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	h.writeConfig(w, cfg)
}

// UpdateProfile applies a partial edit to the business identity fields.
// PUT /admin/config
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	updated := UpdateProfile(*cfg, patch)
	if err := h.store.Set(r.Context(), &updated); err != nil {
		h.logger.Error("failed to save business config", "error", err)
		http.Error(w, `{"error": "failed to save config"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("business profile updated", "name", updated.Name)
	h.writeConfig(w, &updated)
}

// CreateService appends a new service with defaults and returns it.
// POST /admin/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	updated, svc := AddService(*cfg)
	if err := h.store.Set(r.Context(), &updated); err != nil {
		h.logger.Error("failed to save business config", "error", err)
		http.Error(w, `{"error": "failed to save config"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("service created", "service_id", svc.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(svc); err != nil {
		h.logger.Error("failed to encode service", "error", err)
	}
}

// UpdateService applies a patch to one service. An unknown id is a no-op:
// the profile is returned unchanged.
// PATCH /admin/services/{serviceID}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")

	var patch ServicePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	updated := UpdateService(*cfg, serviceID, patch)
	if err := h.store.Set(r.Context(), &updated); err != nil {
		h.logger.Error("failed to save business config", "error", err)
		http.Error(w, `{"error": "failed to save config"}`, http.StatusInternalServerError)
		return
	}

	h.writeConfig(w, &updated)
}

// DeleteService removes one service. An unknown id is a no-op.
// DELETE /admin/services/{serviceID}
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	updated := DeleteService(*cfg, serviceID)
	if err := h.store.Set(r.Context(), &updated); err != nil {
		h.logger.Error("failed to save business config", "error", err)
		http.Error(w, `{"error": "failed to save config"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("service deleted", "service_id", serviceID)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateAvailability applies a patch to one weekday's hours. Other days are
// never affected.
// PATCH /admin/availability/{day}
func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")

	var patch AvailabilityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	updated := UpdateAvailability(*cfg, day, patch)
	if err := h.store.Set(r.Context(), &updated); err != nil {
		h.logger.Error("failed to save business config", "error", err)
		http.Error(w, `{"error": "failed to save config"}`, http.StatusInternalServerError)
		return
	}

	h.writeConfig(w, &updated)
}

// GenerateDescription asks the text-generation model for a one-sentence
// description of a service and saves it. On any generation failure the
// existing description is left untouched.
// POST /admin/services/{serviceID}/describe
func (h *Handler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		http.Error(w, `{"error": "description generation is not configured"}`, http.StatusServiceUnavailable)
		return
	}

	serviceID := chi.URLParam(r, "serviceID")

	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get business config", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	svc, ok := cfg.FindService(serviceID)
	if !ok {
		http.Error(w, `{"error": "service not found"}`, http.StatusNotFound)
		return
	}

	description, err := h.generator.Describe(r.Context(), cfg.Name, svc.Name)
	if err != nil {
		h.logger.Error("description generation failed", "service_id", serviceID, "error", err)
		http.Error(w, `{"error": "description generation failed"}`, http.StatusBadGateway)
		return
	}

	updated := UpdateService(*cfg, serviceID, ServicePatch{Description: &description})
	if err := h.store.Set(r.Context(), &updated); err != nil {
		h.logger.Error("failed to save business config", "error", err)
		http.Error(w, `{"error": "failed to save config"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("service description generated", "service_id", serviceID)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"description": description}); err != nil {
		h.logger.Error("failed to encode description", "error", err)
	}
}

func (h *Handler) writeConfig(w http.ResponseWriter, cfg *Config) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		h.logger.Error("failed to encode business config", "error", err)
	}
}
