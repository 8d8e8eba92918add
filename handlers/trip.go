package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tripRepo "tourvisto/database/repository/trip"
	"tourvisto/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const tripCacheTTL = 10 * time.Minute

// TripHandler serves the read-only trip catalogue with a Redis read-through
// cache in front of the document store.
type TripHandler struct {
	Repo   tripRepo.TripRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewTripHandler(repo tripRepo.TripRepository, cache *redis.Client, logger *zap.Logger) *TripHandler {
	return &TripHandler{Repo: repo, Cache: cache, Logger: logger}
}

// GetTrip handles GET /api/trips/:tripId.
func (h *TripHandler) GetTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	ctx := c.Request.Context()

	cacheKey := "trip:" + tripID
	if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var trip models.Trip
		if err := json.Unmarshal([]byte(cached), &trip); err == nil {
			c.JSON(http.StatusOK, trip)
			return
		}
	}

	trip, err := h.Repo.GetByID(ctx, tripID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Trip not found", "details": err.Error()})
		return
	}

	h.cacheSet(ctx, cacheKey, trip)
	c.JSON(http.StatusOK, trip)
}

// ListTrips handles GET /api/trips with limit/offset paging, newest first.
func (h *TripHandler) ListTrips(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "8"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if limit <= 0 || limit > 100 {
		limit = 8
	}
	if offset < 0 {
		offset = 0
	}
	ctx := c.Request.Context()

	type tripsPage struct {
		Trips []models.Trip `json:"trips"`
		Total int64         `json:"total"`
	}

	cacheKey := fmt.Sprintf("trips:%d:%d", limit, offset)
	if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var page tripsPage
		if err := json.Unmarshal([]byte(cached), &page); err == nil {
			c.JSON(http.StatusOK, page)
			return
		}
	}

	trips, total, err := h.Repo.List(ctx, limit, offset)
	if err != nil {
		h.Logger.Error("Trip listing failed", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to fetch trips", "details": err.Error()})
		return
	}

	page := tripsPage{Trips: trips, Total: total}
	h.cacheSet(ctx, cacheKey, page)
	c.JSON(http.StatusOK, page)
}

// cacheSet stores a cache entry best-effort; a cache failure never fails the
// request.
func (h *TripHandler) cacheSet(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := h.Cache.Set(ctx, key, data, tripCacheTTL).Err(); err != nil {
		h.Logger.Warn("Trip cache write failed", zap.String("key", key), zap.Error(err))
	}
}
