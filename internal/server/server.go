package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/insightgrid/insightgrid/internal/server/middleware"
	"github.com/insightgrid/insightgrid/internal/util"
	"github.com/insightgrid/insightgrid/pkg/ai"
	"github.com/insightgrid/insightgrid/pkg/ai/ollama"
	"github.com/insightgrid/insightgrid/pkg/ai/openai"
	"github.com/insightgrid/insightgrid/pkg/loader"
	fileloader "github.com/insightgrid/insightgrid/pkg/loader/file"
	"github.com/insightgrid/insightgrid/pkg/loader/ocr"
	s3loader "github.com/insightgrid/insightgrid/pkg/loader/s3"
	"github.com/insightgrid/insightgrid/pkg/loader/web"
	"github.com/insightgrid/insightgrid/pkg/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var key *keyfunc.Keyfunc
	if jwksURL := util.GetEnv("AUTH_JWKS_URL"); jwksURL != "" {
		k, err := keyfunc.NewDefault([]string{jwksURL})
		if err != nil {
			logger.Fatal("Failed to load jwks keys", "err", err)
		}
		key = &k
	} else {
		logger.Warn("AUTH_JWKS_URL not set, serving unauthenticated")
	}

	vision := newVisionClient()
	resolver := newResolver(ctx, vision)

	app := &mid.App{
		Resolver: resolver,
		Vision:   vision,
		Key:      key,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			id, err := gonanoid.New()
			if err != nil {
				return ""
			}
			return id
		},
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "err", v.Error)
				return nil
			}
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("8M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// newVisionClient builds the configured vision backend, or nil when no
// adapter is configured and image sources stay disabled.
func newVisionClient() ai.VisionClient {
	adapter := util.GetEnv("VISION_ADAPTER")
	parallel := int64(util.GetEnvNumeric("OCR_PARALLEL", 4))

	switch adapter {
	case "":
		logger.Warn("VISION_ADAPTER not set, image sources disabled")
		return nil
	case "ollama":
		client, err := ollama.NewVisionOllamaClient(ollama.NewVisionOllamaClientParams{
			VisionModel: util.GetEnv("OLLAMA_VISION_MODEL"),

			BaseURL: util.GetEnv("OLLAMA_URL"),
			APIKey:  util.GetEnv("OLLAMA_API_KEY"),

			MaxConcurrentRequests: parallel,
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	case "openai":
		return openai.NewVisionOpenAIClient(openai.NewVisionOpenAIClientParams{
			VisionModel: util.GetEnv("OPENAI_VISION_MODEL"),

			BaseURL: util.GetEnv("OPENAI_URL"),
			APIKey:  util.GetEnv("OPENAI_API_KEY"),

			MaxConcurrentRequests: parallel,
		})
	default:
		logger.Fatal("Unknown vision adapter", "adapter", adapter)
		return nil
	}
}

// newResolver wires the per-source loaders. The S3 loader is only
// attached when a bucket is configured, and the OCR loader only when a
// vision backend exists; unset loaders reject their source type.
func newResolver(ctx context.Context, vision ai.VisionClient) *loader.Resolver {
	timeout := time.Duration(util.GetEnvNumeric("ACQUIRE_TIMEOUT_SECONDS", 30)) * time.Second

	webLoader := web.NewWebLoader(web.NewWebLoaderParams{Timeout: timeout})
	files := fileloader.NewFileLoader(fileloader.NewFileLoaderParams{})

	resolver := &loader.Resolver{
		Web:  webLoader,
		File: files,

		MaxTokens: int(util.GetEnvNumeric("ACQUIRE_MAX_TOKENS", 16384)),
		Retries:   int(util.GetEnvNumeric("ACQUIRE_RETRIES", 2)),
	}

	if bucket := util.GetEnv("AWS_BUCKET"); bucket != "" {
		s3, err := s3loader.NewS3Loader(ctx, s3loader.NewS3LoaderParams{
			Bucket:    bucket,
			Endpoint:  util.GetEnv("AWS_ENDPOINT"),
			Region:    util.GetEnv("AWS_REGION"),
			AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
			SecretKey: util.GetEnv("AWS_SECRET_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create S3 loader", "err", err)
		}
		resolver.S3 = s3
	}

	if vision != nil {
		resolver.Image = ocr.NewOCRLoader(ocr.NewOCRLoaderParams{
			Web:      webLoader,
			File:     files,
			Vision:   vision,
			Parallel: int(util.GetEnvNumeric("OCR_PARALLEL", 4)),
		})
	}

	return resolver
}
