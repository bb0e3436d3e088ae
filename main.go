package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"consultly/config"
	_ "consultly/docs"
	"consultly/internal/availability"
	"consultly/internal/repository"
	"consultly/internal/service"
	"consultly/internal/transport/rest"
	"consultly/pkg/database"
	"consultly/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Consultly Availability API
// @version 1.0
// @description Расчет доступности экспертов и управление расписанием

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer db.Close()

	log.Info("Запуск миграций базы данных", zap.String("dir", cfg.MigrationsDir))
	if err := database.RunMigrations(ctx, db, cfg.MigrationsDir, log); err != nil {
		log.Fatal("Ошибка при выполнении миграций", zap.Error(err))
	}
	log.Info("Миграции успешно выполнены")

	cache, closeCache := newAvailabilityCache(ctx, cfg, log)
	defer closeCache()

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:  repos,
		Logger: log,
		Config: cfg,
		Cache:  cache,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	log.Info("Сервер запущен", zap.String("addr", srv.Addr))

	<-ctx.Done()
	log.Info("Выключение сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Ошибка при остановке сервера", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Сервер успешно остановлен")
}

// newAvailabilityCache выбирает Redis, если он настроен и отвечает, иначе
// кеш в памяти процесса.
func newAvailabilityCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (availability.Cache, func()) {
	memory := func() (availability.Cache, func()) {
		return availability.NewMemoryCache(cfg.Availability.CacheTTL, nil), func() {}
	}

	if cfg.Redis.Addr == "" {
		log.Info("Redis не настроен, используется кеш доступности в памяти")
		return memory()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis недоступен, используется кеш доступности в памяти",
			zap.String("addr", cfg.Redis.Addr),
			zap.Error(err),
		)
		rdb.Close()
		return memory()
	}

	log.Info("Кеш доступности в Redis", zap.String("addr", cfg.Redis.Addr), zap.String("prefix", cfg.Redis.Prefix))
	return availability.NewRedisCache(rdb, cfg.Availability.CacheTTL, cfg.Redis.Prefix, log), func() {
		if err := rdb.Close(); err != nil {
			log.Warn("ошибка закрытия соединения с Redis", zap.Error(err))
		}
	}
}
