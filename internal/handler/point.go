package handler

import (
	"errors"
	"net/http"

	"github.com/DeleoNey/Travel-Planner-API/internal/integration"
	"github.com/DeleoNey/Travel-Planner-API/internal/model"
	"github.com/DeleoNey/Travel-Planner-API/internal/service"

	"github.com/gin-gonic/gin"
)

type pointRequest struct {
	City          string     `json:"city" binding:"required"`
	Country       string     `json:"country" binding:"required"`
	Date          model.Date `json:"date"`
	PlannedBudget float64    `json:"planned_budget"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
}

type pointUpdateRequest struct {
	City          *string     `json:"city"`
	Country       *string     `json:"country"`
	Date          *model.Date `json:"date"`
	PlannedBudget *float64    `json:"planned_budget"`
	Latitude      *float64    `json:"latitude"`
	Longitude     *float64    `json:"longitude"`
}

// ListPoints обработчик для GET /api/trips/:trip_id/points.
func (h *Handler) ListPoints(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}

	points, err := h.PointService.List(c.Request.Context(), userID, tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// CreatePoint обработчик для POST /api/trips/:trip_id/points.
func (h *Handler) CreatePoint(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	var req pointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.PointService.Create(c.Request.Context(), userID, tripID, service.PointInput{
		City:          req.City,
		Country:       req.Country,
		Date:          req.Date,
		PlannedBudget: req.PlannedBudget,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, point)
}

// GetPoint обработчик для GET /api/trips/:trip_id/points/:id.
func (h *Handler) GetPoint(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}

	point, err := h.PointService.Get(c.Request.Context(), userID, tripID, pointID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// UpdatePoint обработчик для PUT /api/trips/:trip_id/points/:id - полное обновление.
func (h *Handler) UpdatePoint(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req pointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.PointService.Update(c.Request.Context(), userID, tripID, pointID, service.PointUpdate{
		City:          &req.City,
		Country:       &req.Country,
		Date:          &req.Date,
		PlannedBudget: &req.PlannedBudget,
		Latitude:      &req.Latitude,
		Longitude:     &req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// PatchPoint обработчик для PATCH /api/trips/:trip_id/points/:id - частичное обновление.
func (h *Handler) PatchPoint(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req pointUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.PointService.Update(c.Request.Context(), userID, tripID, pointID, service.PointUpdate{
		City:          req.City,
		Country:       req.Country,
		Date:          req.Date,
		PlannedBudget: req.PlannedBudget,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// DeletePoint обработчик для DELETE /api/trips/:trip_id/points/:id.
func (h *Handler) DeletePoint(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.PointService.Delete(userID, tripID, pointID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PlacesNearby обработчик для GET /api/trips/:trip_id/points/:id/places-nearby.
// Сбой провайдера не считается ошибкой запроса: его форма ошибки передается
// клиенту как есть.
func (h *Handler) PlacesNearby(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}

	places, err := h.PointService.PlacesNearby(c.Request.Context(), userID, tripID, pointID)
	if err != nil {
		var provErr *integration.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusOK, gin.H{"error": provErr.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

// WeatherForPoint обработчик для GET /api/trips/:trip_id/points/:id/weather.
func (h *Handler) WeatherForPoint(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	tripID, ok := pathID(c, "trip_id")
	if !ok {
		return
	}
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}

	weather, err := h.PointService.Weather(c.Request.Context(), userID, tripID, pointID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weather": weather})
}
