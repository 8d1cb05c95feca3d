package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skycast/skycast-go/internal/middleware"
	"github.com/skycast/skycast-go/internal/model"
	"github.com/skycast/skycast-go/internal/service"
	"github.com/skycast/skycast-go/internal/weather"
)

// LocationHandler handles saved-location CRUD and the weather batch endpoint.
type LocationHandler struct {
	locations  *service.LocationService
	aggregator *weather.Aggregator
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locations *service.LocationService, aggregator *weather.Aggregator) *LocationHandler {
	return &LocationHandler{locations: locations, aggregator: aggregator}
}

// HandleList handles GET /api/locations requests.
func (h *LocationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failureResponse("unauthorized"))
		return
	}

	locations, err := h.locations.List(r.Context(), userID)
	if err != nil {
		slog.Error("listing locations failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse("failed to fetch locations"))
		return
	}

	if locations == nil {
		locations = []model.Location{}
	}
	writeJSON(w, http.StatusOK, locations)
}

// HandleAdd handles POST /api/locations requests.
func (h *LocationHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failureResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.AddLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse("invalid request body"))
		return
	}

	loc, err := h.locations.Add(r.Context(), userID, req.Location)
	if err != nil {
		if errors.Is(err, service.ErrLocationNameRequired) {
			writeJSON(w, http.StatusBadRequest, failureResponse(err.Error()))
			return
		}
		slog.Error("adding location failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse("failed to add location"))
		return
	}

	writeJSON(w, http.StatusOK, model.AddLocationResponse{Success: true, Location: loc})
}

// HandleDelete handles DELETE /api/locations/{id} requests. Deleting a
// location that does not exist, or that belongs to another user, still
// reports success.
func (h *LocationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failureResponse("unauthorized"))
		return
	}

	locationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse("invalid location id"))
		return
	}

	if err := h.locations.Delete(r.Context(), locationID, userID); err != nil {
		slog.Error("deleting location failed", "user_id", userID, "location_id", locationID, "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse("failed to delete location"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleWeather handles GET /api/locations/weather requests. It fetches
// current conditions for every saved location; one failing lookup fails the
// whole batch.
func (h *LocationHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failureResponse("unauthorized"))
		return
	}

	locations, err := h.locations.List(r.Context(), userID)
	if err != nil {
		slog.Error("listing locations failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse("failed to fetch locations"))
		return
	}

	observations, err := h.aggregator.Fetch(r.Context(), locations)
	if err != nil {
		slog.Error("weather aggregation failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "failed to fetch weather data for locations",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, observations)
}
