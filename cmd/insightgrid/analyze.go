package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insightgrid/insightgrid/pkg/insight"
	"github.com/insightgrid/insightgrid/pkg/quadrant"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run the full pipeline and render a quadrant diagram",
	Long: `Analyze resolves the given source to cleaned text, extracts insights,
scores them along the two configured dimensions and renders the quadrant
diagram. By default the SVG goes to stdout; --output writes it to a file
and --json emits the full analysis (diagram, layouts, summary, extraction)
as JSON instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("url", "", "fetch the article from a URL")
	analyzeCmd.Flags().String("s3", "", "read the article from the configured S3 bucket")
	analyzeCmd.Flags().String("image", "", "transcribe the article from an image (URL or path)")

	analyzeCmd.Flags().String("x-dimension", "", "scoring dimension for the x axis (default importance)")
	analyzeCmd.Flags().String("y-dimension", "", "scoring dimension for the y axis (default impact)")
	analyzeCmd.Flags().String("x-label", "", "display label for the x axis")
	analyzeCmd.Flags().String("y-label", "", "display label for the y axis")
	analyzeCmd.Flags().StringSlice("labels", nil, "four quadrant labels, Q1 through Q4")
	analyzeCmd.Flags().Int("max-per-quadrant", 0, "cap insights shown per quadrant (default 15)")

	analyzeCmd.Flags().Int("max-insights", 0, "cap extracted insights (default 20)")
	analyzeCmd.Flags().Int("min-length", 0, "minimum accepted content length in characters (default 100)")

	analyzeCmd.Flags().String("title", "", "diagram title")
	analyzeCmd.Flags().Int("width", 0, "canvas width in pixels (default 500)")
	analyzeCmd.Flags().Int("height", 0, "canvas height in pixels (default 500)")
	analyzeCmd.Flags().String("color-scheme", "", "professional, vibrant or monochrome")

	analyzeCmd.Flags().Bool("json", false, "emit the full analysis as JSON instead of SVG")
	analyzeCmd.Flags().StringP("output", "o", "-", "output path, - for stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := sourceFromFlags(cmd, args)
	if err != nil {
		return err
	}

	params, err := analyzeParamsFromFlags(cmd)
	if err != nil {
		return err
	}

	resolver, err := newResolver(ctx)
	if err != nil {
		return err
	}

	text, err := resolver.Resolve(ctx, src)
	if err != nil {
		return err
	}

	analysis, err := quadrant.Analyze(ctx, text, params)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		return writeOutput(output, append(data, '\n'))
	}
	return writeOutput(output, []byte(analysis.Diagram.SVG))
}

func analyzeParamsFromFlags(cmd *cobra.Command) (quadrant.AnalyzeParams, error) {
	xDim, _ := cmd.Flags().GetString("x-dimension")
	yDim, _ := cmd.Flags().GetString("y-dimension")
	xLabel, _ := cmd.Flags().GetString("x-label")
	yLabel, _ := cmd.Flags().GetString("y-label")

	params := quadrant.AnalyzeParams{
		XAxis: quadrant.AxisSpec{Dimension: quadrant.Dimension(xDim), Label: xLabel},
		YAxis: quadrant.AxisSpec{Dimension: quadrant.Dimension(yDim), Label: yLabel},
	}

	labels, _ := cmd.Flags().GetStringSlice("labels")
	if len(labels) > 0 {
		if len(labels) != 4 {
			return params, fmt.Errorf("--labels needs exactly four values, got %d", len(labels))
		}
		copy(params.QuadrantLabels[:], labels)
	}

	params.MaxPerQuadrant, _ = cmd.Flags().GetInt("max-per-quadrant")

	maxInsights, _ := cmd.Flags().GetInt("max-insights")
	minLength, _ := cmd.Flags().GetInt("min-length")
	params.Extraction = insight.Options{MaxInsights: maxInsights, MinLength: minLength}

	params.Render.Title, _ = cmd.Flags().GetString("title")
	params.Render.Width, _ = cmd.Flags().GetInt("width")
	params.Render.Height, _ = cmd.Flags().GetInt("height")
	params.Render.ColorScheme, _ = cmd.Flags().GetString("color-scheme")

	return params, nil
}
