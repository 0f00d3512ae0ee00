package routes

import (
	"context"
	"os"
	"strconv"
	"time"

	_ "skilllink/docs" // swag-generated documentation
	"skilllink/internal/adapter/http/handlers"
	"skilllink/internal/adapter/http/middleware"
	repository "skilllink/internal/adapter/persistence/repository"
	"skilllink/internal/infrastructure/database"
	applogger "skilllink/internal/infrastructure/logger"
	"skilllink/internal/infrastructure/worker"
	"skilllink/internal/usecase"
	"skilllink/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires repositories, use cases, handlers and the background
// sweeper, then serves until the process exits.
func Run() {
	log := applogger.New(os.Getenv("ENV"))
	defer log.Sync() //nolint:errcheck

	setMiddlewares(log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sweeper := getRoutes(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)
	defer sweeper.Stop()

	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	log.Info("starting server", zap.Int("port", port))
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) *worker.ExpirySweeper {
	ddb := database.ConnectDynamoDB(log)

	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)

	lifecycleUseCase := usecase.NewBookingLifecycleUseCase(bookingRepo)
	ledgerUseCase := usecase.NewLedgerUseCase(bookingRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)

	bookingHandler := handlers.NewBookingHandler(lifecycleUseCase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	identified := v1.Group("")
	identified.Use(middleware.Identity(os.Getenv("JWT_SECRET")))
	addBookingRoutes(identified, bookingHandler)
	addLedgerRoutes(identified, ledgerHandler)
	addProfileRoutes(identified, clientHandler)

	return worker.NewExpirySweeper(lifecycleUseCase, log, sweepInterval())
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.HTTPMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func sweepInterval() time.Duration {
	const defaultMinutes = 60
	minutes := defaultMinutes
	if raw := os.Getenv("SWEEP_INTERVAL_MINUTES"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}
