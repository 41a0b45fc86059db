// Package api provides HTTP handlers for the Pond Planner API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
	"github.com/PartTimeLegend/pond-planner/internal/core/stock"
	"github.com/PartTimeLegend/pond-planner/internal/core/validation"
	"github.com/PartTimeLegend/pond-planner/internal/planner"
	"github.com/PartTimeLegend/pond-planner/internal/shell/store"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API. The planner holds session
// state and is not safe for concurrent use, so every handler takes mu.
type Handler struct {
	planner *planner.Planner
	logger  *slog.Logger
	mu      sync.Mutex
}

// NewHandler creates a new API handler.
func NewHandler(p *planner.Planner, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		planner: p,
		logger:  l,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)

	// Health endpoint
	r.Get("/health", h.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Catalog routes
		r.Get("/shapes", h.handleListShapes)
		r.Get("/fish", h.handleListFish)

		// Current planning session
		r.Route("/pond", func(r chi.Router) {
			r.Get("/", h.handleGetPond)
			r.Put("/dimensions", h.handleSetDimensions)
			r.Post("/fish", h.handleAddFish)
			r.Delete("/fish", h.handleRemoveFish)
			r.Post("/fish/batch", h.handleAddFishBatch)
			r.Get("/volume", h.handleVolume)
			r.Get("/stocking", h.handleStocking)
			r.Get("/equipment", h.handleEquipment)
			r.Get("/report", h.handleReport)
		})

		// Saved ponds
		r.Route("/ponds", func(r chi.Router) {
			r.Post("/", h.handleSavePond)
			r.Get("/", h.handleListPonds)
			r.Get("/{slug}", h.handleGetSavedPond)
			r.Post("/{slug}/load", h.handleLoadPond)
			r.Delete("/{slug}", h.handleDeletePond)
		})
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health Handler
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// =============================================================================
// Catalog Handlers
// =============================================================================

func (h *Handler) handleListShapes(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	keys := h.planner.AvailableShapes()
	shapes := make([]ShapeResponse, 0, len(keys))
	for _, key := range keys {
		def, err := h.planner.Shape(key)
		if err != nil {
			continue
		}
		shapes = append(shapes, ShapeResponse{
			Key:            def.Key,
			Name:           def.Name,
			Description:    def.Description,
			DimensionLabel: def.DimensionLabel(),
		})
	}

	h.writeJSON(w, http.StatusOK, ShapesResponse{
		Shapes:     shapes,
		Categories: h.planner.ShapesByCategory(),
	})
}

func (h *Handler) handleListFish(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	keys := h.planner.FishTypes()
	species := make([]SpeciesResponse, 0, len(keys))
	for _, key := range keys {
		sp, err := h.planner.Species(key)
		if err != nil {
			continue
		}
		species = append(species, SpeciesResponse{
			Key:              sp.Key,
			Name:             sp.Name,
			AdultLengthCM:    sp.AdultLengthCM,
			BioloadFactor:    sp.BioloadFactor,
			MinLitersPerFish: sp.MinLitersPerFish,
		})
	}

	h.writeJSON(w, http.StatusOK, FishTypesResponse{Species: species})
}

// =============================================================================
// Session Handlers
// =============================================================================

func (h *Handler) handleGetPond(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	resp := PondResponse{FishStock: h.planner.FishStock()}
	if dims, ok := h.planner.Dimensions(); ok {
		resp.Dimensions = &DimensionsResponse{
			Length: dims.LengthM,
			Width:  dims.WidthM,
			Depth:  dims.DepthM,
			Shape:  dims.Shape,
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSetDimensions(w http.ResponseWriter, r *http.Request) {
	var req DimensionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.planner.SetDimensions(req.Length, req.Width, req.Depth, req.Shape); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, DimensionsResponse{
		Length: req.Length,
		Width:  req.Width,
		Depth:  req.Depth,
		Shape:  req.Shape,
	})
}

func (h *Handler) handleAddFish(w http.ResponseWriter, r *http.Request) {
	var req FishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.planner.AddFish(req.Species, req.Quantity); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PondResponse{FishStock: h.planner.FishStock()})
}

func (h *Handler) handleRemoveFish(w http.ResponseWriter, r *http.Request) {
	var req FishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.planner.RemoveFish(req.Species, req.Quantity); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PondResponse{FishStock: h.planner.FishStock()})
}

func (h *Handler) handleAddFishBatch(w http.ResponseWriter, r *http.Request) {
	var req FishBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.planner.AddFishBatch(req.Fish); err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PondResponse{FishStock: h.planner.FishStock()})
}

// =============================================================================
// Calculation Handlers
// =============================================================================

func (h *Handler) handleVolume(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	liters, err := h.planner.VolumeLiters()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, VolumeResponse{VolumeLiters: liters})
}

func (h *Handler) handleStocking(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	liters, err := h.planner.VolumeLiters()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	required, err := h.planner.RequiredVolumeLiters()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	bioload, err := h.planner.Bioload()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	adequate, err := h.planner.IsAdequatelyStocked()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	recommendations, err := h.planner.StockingRecommendations()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StockingResponse{
		VolumeLiters:    liters,
		RequiredLiters:  required,
		Bioload:         bioload,
		Adequate:        adequate,
		Recommendations: recommendations,
	})
}

func (h *Handler) handleEquipment(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pump, err := h.planner.PumpSize()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	filterMedia, err := h.planner.FilterSize()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	uvWatts, err := h.planner.UVWattage()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	mechanical, err := h.planner.MechanicalFilter()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, EquipmentResponse{
		Pump:              PumpResponse{FlowLPH: pump.FlowLPH, Category: pump.Category},
		FilterMediaLiters: filterMedia,
		UVWatts:           uvWatts,
		MechanicalFilter:  mechanical,
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	report, err := h.planner.GenerateReport()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ReportResponse{Report: report})
}

// =============================================================================
// Saved Pond Handlers
// =============================================================================

func (h *Handler) handleSavePond(w http.ResponseWriter, r *http.Request) {
	var req SavePondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	pond, err := h.planner.SavePond(r.Context(), req.Name, req.Description)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, pondToResponse(pond))
}

func (h *Handler) handleListPonds(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ponds, err := h.planner.ListSavedPonds(r.Context())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := ListPondsResponse{
		Ponds: make([]SavedPondResponse, 0, len(ponds)),
		Total: len(ponds),
	}
	for i := range ponds {
		resp.Ponds = append(resp.Ponds, pondToResponse(&ponds[i]))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSavedPond(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pond, err := h.planner.GetSavedPond(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, pondToResponse(pond))
}

func (h *Handler) handleLoadPond(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pond, err := h.planner.LoadPond(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, pondToResponse(pond))
}

func (h *Handler) handleDeletePond(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.planner.DeleteSavedPond(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

func pondToResponse(pond *domain.SavedPond) SavedPondResponse {
	return SavedPondResponse{
		ReferenceID: pond.ReferenceID,
		Name:        pond.Name,
		Slug:        pond.Slug,
		Description: pond.Description,
		Dimensions: DimensionsResponse{
			Length: pond.Dimensions.LengthM,
			Width:  pond.Dimensions.WidthM,
			Depth:  pond.Dimensions.DepthM,
			Shape:  pond.Dimensions.Shape,
		},
		FishStock: pond.FishStock,
		TotalFish: pond.FishStock.Total(),
		CreatedAt: pond.CreatedAt,
		UpdatedAt: pond.UpdatedAt,
	}
}

// writeDomainError maps planner and core errors to HTTP status codes.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var valErr *validation.ValidationError
	switch {
	case errors.As(err, &valErr):
		fields := make([]FieldErrorResponse, 0, len(valErr.Errors))
		for _, fe := range valErr.Errors {
			fields = append(fields, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  valErr.Error(),
			Code:   "validation_error",
			Fields: fields,
		})
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrNameTooShort),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrNameInvalidChars):
		h.writeError(w, http.StatusBadRequest, err.Error(), "validation_error")
	case errors.Is(err, planner.ErrDimensionsNotSet):
		h.writeError(w, http.StatusConflict, err.Error(), "dimensions_not_set")
	case errors.Is(err, stock.ErrInsufficientStock):
		h.writeError(w, http.StatusConflict, err.Error(), "insufficient_stock")
	case errors.Is(err, store.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error(), "not_found")
	default:
		h.logger.Error("request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

// writeError writes a JSON error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
