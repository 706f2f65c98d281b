package handler

import (
	"net/http"

	"github.com/DeleoNey/Travel-Planner-API/internal/model"
	"github.com/DeleoNey/Travel-Planner-API/internal/service"

	"github.com/gin-gonic/gin"
)

type tripRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  *string    `json:"description"`
	StartDate    model.Date `json:"start_date"`
	EndDate      model.Date `json:"end_date"`
	BaseCurrency string     `json:"base_currency"`
}

type tripUpdateRequest struct {
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	StartDate    *model.Date `json:"start_date"`
	EndDate      *model.Date `json:"end_date"`
	BaseCurrency *string     `json:"base_currency"`
}

// ListTrips обработчик для GET /api/trips - возвращает поездки пользователя.
func (h *Handler) ListTrips(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	trips, err := h.TripService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// CreateTrip обработчик для POST /api/trips - создает новую поездку.
func (h *Handler) CreateTrip(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.TripService.Create(userID, service.TripInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BaseCurrency: req.BaseCurrency,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GetTrip обработчик для GET /api/trips/:trip_id.
func (h *Handler) GetTrip(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}

	trip, err := h.TripService.Get(userID, tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTrip обработчик для PUT /api/trips/:trip_id - полное обновление.
func (h *Handler) UpdateTrip(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := req.BaseCurrency
	if currency == "" {
		currency = "USD"
	}
	trip, err := h.TripService.Update(userID, tripID, service.TripUpdate{
		Title:        &req.Title,
		Description:  req.Description,
		StartDate:    &req.StartDate,
		EndDate:      &req.EndDate,
		BaseCurrency: &currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// PatchTrip обработчик для PATCH /api/trips/:trip_id - частичное обновление.
func (h *Handler) PatchTrip(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	var req tripUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.TripService.Update(userID, tripID, service.TripUpdate{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BaseCurrency: req.BaseCurrency,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip обработчик для DELETE /api/trips/:trip_id.
func (h *Handler) DeleteTrip(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}

	if err := h.TripService.Delete(userID, tripID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
