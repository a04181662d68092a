package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "production_scheduler/docs"
	"production_scheduler/internal/adapter/http/handlers"
	"production_scheduler/internal/infrastructure/logger"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Dependencies are the handlers and the session verifier the router mounts.
type Dependencies struct {
	Auth   usecase.IAuthUseCase
	Portal usecase.IPortalUseCase
	Admin  usecase.IAdminUseCase
	Logger *zap.Logger
}

// NewRouter builds the engine with middlewares, swagger and every /v1 route.
func NewRouter(deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, handlers.NewAuthHandler(deps.Auth))
	addPortalRoutes(v1, handlers.NewPortalHandler(deps.Portal), deps.Auth)
	addAdminRoutes(v1, handlers.NewAdminHandler(deps.Admin), deps.Auth)
	return router
}

// Run serves until SIGINT/SIGTERM and then drains in-flight requests.
func Run(router *gin.Engine, port int, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server exited gracefully")
	return nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
}
