package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/DeleoNey/Travel-Planner-API/internal/config"
	"github.com/DeleoNey/Travel-Planner-API/internal/handler"
	"github.com/DeleoNey/Travel-Planner-API/internal/integration"
	"github.com/DeleoNey/Travel-Planner-API/internal/logger"
	"github.com/DeleoNey/Travel-Planner-API/internal/middleware"
	"github.com/DeleoNey/Travel-Planner-API/internal/repository"
	"github.com/DeleoNey/Travel-Planner-API/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"go.uber.org/zap"
)

func main() {
	// .env удобен при локальной разработке; в остальных окружениях его может не быть
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer logger.Sync()
	zl := logger.Get()

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		zl.Fatal("Не удалось подключиться к базе данных", zap.Error(err))
	}

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			if _, err := db.Exec("BEGIN"); err != nil {
				zl.Warn("Ошибка при инициации транзакции миграции", zap.Error(err))
				continue
			}
			err := func() error {
				content, readErr := os.ReadFile(file)
				if readErr != nil {
					return readErr
				}
				if _, execErr := db.Exec(string(content)); execErr != nil {
					return execErr
				}
				return nil
			}()
			if err != nil {
				zl.Warn("Миграция завершилась ошибкой", zap.String("file", file), zap.Error(err))
				db.Exec("ROLLBACK")
			} else {
				db.Exec("COMMIT")
				zl.Info("Миграция применена", zap.String("file", file))
			}
		}
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	pointRepo := repository.NewPointRepository(db)

	// Клиенты внешних сервисов
	currencyService := integration.NewCurrencyService(cfg.CurrencyAPIURL, cfg.BaseCurrency)
	weatherService := integration.NewWeatherService(cfg.WeatherAPIURL, cfg.WeatherAPIKey)
	placesService := integration.NewPlacesService(cfg.PlacesAPIURL, cfg.PlacesAPIKey)

	// Инициализируем сервисы
	guard := service.NewOwnershipGuard(tripRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	tripService := service.NewTripService(tripRepo, guard)
	pointService := service.NewPointService(tripRepo, pointRepo, guard, currencyService, weatherService, placesService)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, tripService, pointService)
	router := gin.Default()
	api := router.Group("/api")
	{
		users := api.Group("/users", middleware.RateLimit(5, 10))
		{
			users.POST("/register", h.Register)
			users.POST("/login", h.Login)
		}
		trips := api.Group("/trips", middleware.Auth(cfg.JWTSecret))
		{
			trips.GET("", h.ListTrips)
			trips.POST("", h.CreateTrip)
			trips.GET("/:trip_id", h.GetTrip)
			trips.PUT("/:trip_id", h.UpdateTrip)
			trips.PATCH("/:trip_id", h.PatchTrip)
			trips.DELETE("/:trip_id", h.DeleteTrip)

			trips.GET("/:trip_id/points", h.ListPoints)
			trips.POST("/:trip_id/points", h.CreatePoint)
			trips.GET("/:trip_id/points/:id", h.GetPoint)
			trips.PUT("/:trip_id/points/:id", h.UpdatePoint)
			trips.PATCH("/:trip_id/points/:id", h.PatchPoint)
			trips.DELETE("/:trip_id/points/:id", h.DeletePoint)
			trips.GET("/:trip_id/points/:id/places-nearby", h.PlacesNearby)
			trips.GET("/:trip_id/points/:id/weather", h.WeatherForPoint)
		}
	}
	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	zl.Info("Запуск HTTP-сервера", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
