package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/insightgrid/insightgrid/pkg/insight"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract insights from an article without rendering",
	Long: `Extract resolves the given source to cleaned text and runs insight
extraction alone: salient statements with salience and sentiment scores,
document keywords, overall sentiment and text statistics, printed as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("url", "", "fetch the article from a URL")
	extractCmd.Flags().String("s3", "", "read the article from the configured S3 bucket")
	extractCmd.Flags().String("image", "", "transcribe the article from an image (URL or path)")

	extractCmd.Flags().Int("max-insights", 0, "cap extracted insights (default 20)")
	extractCmd.Flags().Int("min-length", 0, "minimum accepted content length in characters (default 100)")

	extractCmd.Flags().StringP("output", "o", "-", "output path, - for stdout")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := sourceFromFlags(cmd, args)
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

	maxInsights, _ := cmd.Flags().GetInt("max-insights")
	minLength, _ := cmd.Flags().GetInt("min-length")
	result, err := insight.Extract(text, insight.Options{MaxInsights: maxInsights, MinLength: minLength})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	return writeOutput(output, append(data, '\n'))
}
