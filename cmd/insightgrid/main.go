// Package main is the entry point for the insightgrid CLI. It runs the
// article-to-quadrant pipeline once per invocation: resolve a source to
// cleaned text, extract insights, score them onto two axes and render the
// quadrant diagram.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

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
	"github.com/insightgrid/insightgrid/pkg/logger/console"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "insightgrid",
	Short: "Turn article text into a labeled quadrant diagram",
	Long: `insightgrid extracts the salient statements from an article, scores each
one along two semantic dimensions and renders the result as a 2x2 quadrant
diagram in SVG.

Content can come from a local file, stdin, a URL, a configured S3 bucket or
an image (transcribed through an AI vision backend). Backends and credentials
are configured through the same environment variables the server uses; a
.env file in the working directory is picked up automatically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.LoadEnv()

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
			Debug:  verbose || util.GetEnvBool("DEBUG", false),
			Prefix: "insightgrid",
		}))
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// sourceFromFlags builds the content source from the mutually exclusive
// source flags and the optional positional argument. A positional "-"
// reads stdin.
func sourceFromFlags(cmd *cobra.Command, args []string) (loader.Source, error) {
	var sources []loader.Source

	if v, _ := cmd.Flags().GetString("url"); v != "" {
		sources = append(sources, loader.Source{Type: loader.SourceTypeURL, Value: v})
	}
	if v, _ := cmd.Flags().GetString("s3"); v != "" {
		sources = append(sources, loader.Source{Type: loader.SourceTypeS3, Value: v})
	}
	if v, _ := cmd.Flags().GetString("image"); v != "" {
		sources = append(sources, loader.Source{Type: loader.SourceTypeImage, Value: v})
	}
	if len(args) == 1 {
		if args[0] == "-" {
			text, err := io.ReadAll(os.Stdin)
			if err != nil {
				return loader.Source{}, fmt.Errorf("reading stdin: %w", err)
			}
			sources = append(sources, loader.Source{Type: loader.SourceTypeText, Value: string(text)})
		} else {
			sources = append(sources, loader.Source{Type: loader.SourceTypeFile, Value: args[0]})
		}
	}

	switch len(sources) {
	case 0:
		return loader.Source{}, fmt.Errorf("provide a file path, - for stdin, or one of --url, --s3, --image")
	case 1:
		return sources[0], nil
	default:
		return loader.Source{}, fmt.Errorf("provide exactly one content source")
	}
}

// newResolver wires the loaders from the environment the same way the
// server does. S3 and image sources stay disabled unless configured.
func newResolver(ctx context.Context) (*loader.Resolver, error) {
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
			return nil, fmt.Errorf("creating s3 loader: %w", err)
		}
		resolver.S3 = s3
	}

	if vision, err := newVisionClient(); err != nil {
		return nil, err
	} else if vision != nil {
		resolver.Image = ocr.NewOCRLoader(ocr.NewOCRLoaderParams{
			Web:      webLoader,
			File:     files,
			Vision:   vision,
			Parallel: int(util.GetEnvNumeric("OCR_PARALLEL", 4)),
		})
	}

	return resolver, nil
}

func newVisionClient() (ai.VisionClient, error) {
	adapter := util.GetEnv("VISION_ADAPTER")
	parallel := int64(util.GetEnvNumeric("OCR_PARALLEL", 4))

	switch adapter {
	case "":
		return nil, nil
	case "ollama":
		client, err := ollama.NewVisionOllamaClient(ollama.NewVisionOllamaClientParams{
			VisionModel: util.GetEnv("OLLAMA_VISION_MODEL"),

			BaseURL: util.GetEnv("OLLAMA_URL"),
			APIKey:  util.GetEnv("OLLAMA_API_KEY"),

			MaxConcurrentRequests: parallel,
		})
		if err != nil {
			return nil, fmt.Errorf("creating ollama client: %w", err)
		}
		return client, nil
	case "openai":
		return openai.NewVisionOpenAIClient(openai.NewVisionOpenAIClientParams{
			VisionModel: util.GetEnv("OPENAI_VISION_MODEL"),

			BaseURL: util.GetEnv("OPENAI_URL"),
			APIKey:  util.GetEnv("OPENAI_API_KEY"),

			MaxConcurrentRequests: parallel,
		}), nil
	default:
		return nil, fmt.Errorf("unknown vision adapter %q", adapter)
	}
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
