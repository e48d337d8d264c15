package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/andriekus/product-options-service/config"
	"github.com/andriekus/product-options-service/internal/controller"
	kafkaInfra "github.com/andriekus/product-options-service/internal/infrastructure/message-queue/kafka"
	"github.com/andriekus/product-options-service/internal/infrastructure/tracing"
	custommiddleware "github.com/andriekus/product-options-service/internal/middleware"
	"github.com/andriekus/product-options-service/internal/repository"
	"github.com/andriekus/product-options-service/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("product-options-service")
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	e.Use(custommiddleware.Logger)

	// The gate runs before routing, so unmatched routes still require a
	// valid token.
	e.Use(custommiddleware.VerifyToken(app.Config.JWTSecret))

	var publisher service.EventPublisher
	if app.Config.KafkaConfig.BrokerAddress != "" {
		producer, err := kafkaInfra.CreateKafkaProducer(app.Config)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to the broker")
		}
		defer producer.Close()
		publisher = producer
	}

	mongoDBRepo := repository.CreateNewMongoDBRepository(app.DB)
	svc := service.CreateProductService(mongoDBRepo, *app.Config, publisher)
	controller.CreateProductController(e, svc)

	app.Server = e

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
