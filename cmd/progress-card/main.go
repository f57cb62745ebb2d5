package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/progress-card/api/swagger"
	"github.com/noah-isme/progress-card/internal/handler"
	"github.com/noah-isme/progress-card/internal/middleware"
	"github.com/noah-isme/progress-card/internal/repository"
	"github.com/noah-isme/progress-card/internal/service"
	"github.com/noah-isme/progress-card/internal/view"
	"github.com/noah-isme/progress-card/pkg/cache"
	"github.com/noah-isme/progress-card/pkg/config"
	"github.com/noah-isme/progress-card/pkg/database"
	"github.com/noah-isme/progress-card/pkg/export"
	"github.com/noah-isme/progress-card/pkg/logger"
	corsmiddleware "github.com/noah-isme/progress-card/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/progress-card/pkg/middleware/requestid"
	"github.com/noah-isme/progress-card/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Disconnect(mongoClient, cfg.ShutdownTimeout); err != nil {
			logr.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	collection := mongoClient.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	logr.Info("record store connected",
		zap.String("database", cfg.Mongo.Database),
		zap.String("collection", cfg.Mongo.Collection),
	)

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.TableCache.Enabled {
		redisClient, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("table cache disabled: redis unavailable", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(redisClient)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.TableCache.TTL, logr, cacheRepo != nil)

	tables := repository.NewTableRepository(collection, metrics)
	records := service.NewRecordService(repository.NewRecordRepository(tables, validator.New(), logr), cacheSvc)

	scratch, err := storage.NewLocalStorage(cfg.PDF.ScratchDir)
	if err != nil {
		return err
	}

	cards := service.NewProgressCardService(records, service.PastelPalette(), logr)
	roster := service.NewRosterService(records, export.NewCSVExporter())
	pdf := service.NewPDFService(records, scratch, export.NewPDFExporter(), logr)
	workbook := service.NewWorkbookService(cards, export.NewXLSXExporter())
	views := view.NewRenderer(cfg.Render.TemplateDir)

	pdf.StartJanitor(ctx, cfg.PDF.ScratchTTL/2, cfg.PDF.ScratchTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	readiness := handler.PingerFunc(func(ctx context.Context) error {
		return database.Ping(ctx, mongoClient)
	})
	handler.Register(r, handler.Handlers{
		Pages:    handler.NewPageHandler(roster, views),
		Students: handler.NewStudentHandler(roster, metrics),
		Reports:  handler.NewReportHandler(cards, views, pdf, workbook, metrics),
		Metrics:  handler.NewMetricsHandler(metrics, readiness),
	})

	if cfg.Render.StaticDir != "" {
		r.Static("/static", cfg.Render.StaticDir)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logr.Info("shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
		return srv.Close()
	}
	logr.Info("server stopped")
	return nil
}
