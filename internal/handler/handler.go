package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DeleoNey/Travel-Planner-API/internal/logger"
	"github.com/DeleoNey/Travel-Planner-API/internal/middleware"
	"github.com/DeleoNey/Travel-Planner-API/internal/repository"
	"github.com/DeleoNey/Travel-Planner-API/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService  *service.AuthService
	TripService  *service.TripService
	PointService *service.PointService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, ts *service.TripService, ps *service.PointService) *Handler {
	return &Handler{
		AuthService:  as,
		TripService:  ts,
		PointService: ps,
	}
}

// respondError единообразно переводит ошибки сервисов в HTTP-статусы.
func respondError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrWeatherNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "weather not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateUsername), errors.Is(err, repository.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Get().Error("внутренняя ошибка при обработке запроса",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actor возвращает идентификатор аутентифицированного пользователя.
// Отсутствие идентификатора означает неправильно собранную цепочку middleware.
func actor(c *gin.Context) (int, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	}
	return id, ok
}

// pathID разбирает числовой параметр пути; нечисловое значение - это
// обращение к несуществующему ресурсу.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}
