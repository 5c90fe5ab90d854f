package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yuanying/pptximport/internal/importer"
	"github.com/yuanying/pptximport/internal/mathtext"
	"github.com/yuanying/pptximport/internal/preview"
)

var rootCmd = &cobra.Command{
	Use:   "pptximport",
	Short: "Import PowerPoint (.pptx) files into a presentation document",
	Long: `pptximport reads a .pptx package, extracts its slides (text, images,
shapes and speaker notes) and writes the resulting presentation document
as JSON, optionally together with a static HTML preview.

Extraction is best-effort: unreadable images degrade to warnings and the
import continues.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		outputPath := viper.GetString("output")
		htmlPath := viper.GetString("html")

		if outputPath == "" {
			outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
		}

		opts := importer.Options{
			PreserveFormatting: true,
			ImportImages:       !viper.GetBool("no-images"),
			ImportShapes:       !viper.GetBool("no-shapes"),
			ImportNotes:        !viper.GetBool("no-notes"),
			MaxImageSizeMB:     viper.GetInt("max-image-size"),
			ImageQuality:       importer.ImageQuality(viper.GetString("image-quality")),
		}

		log.Printf("Importing: %s -> %s", inputPath, outputPath)

		result := importer.ImportFile(inputPath, opts, func(p importer.Progress) {
			if viper.GetBool("verbose") {
				log.Printf("[%s] %3d%% %s", p.Stage, p.Percent, p.Message)
			}
		})

		for _, w := range result.Warnings {
			log.Printf("warning: %s", w)
		}

		if !result.Success {
			for _, e := range result.Errors {
				log.Printf("error: %s", e)
			}
			return fmt.Errorf("import failed with %d errors", len(result.Errors))
		}

		data, err := json.MarshalIndent(result.Document, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		if htmlPath != "" {
			page, err := preview.Render(result.Document, mathtext.HTMLRenderer{})
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
				return fmt.Errorf("failed to write preview: %w", err)
			}
		}

		log.Printf("Done: %d slides imported, %d elements skipped", result.ImportedSlides, result.SkippedElements)
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("output", "o", "", "Output JSON path (default: input with .json extension)")
	flags.String("html", "", "Also write a static HTML preview to this path")
	flags.Bool("no-images", false, "Skip image extraction")
	flags.Bool("no-shapes", false, "Skip shape extraction")
	flags.Bool("no-notes", false, "Skip speaker notes extraction")
	flags.Int("max-image-size", 10, "Maximum size per image in MB (0 disables the cap)")
	flags.String("image-quality", "medium", "Image processing quality: low, medium or high")
	flags.BoolP("verbose", "v", false, "Log per-stage progress")

	viper.SetEnvPrefix("PPTXIMPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("pptximport")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config: %s", viper.ConfigFileUsed())
	}

	if err := viper.BindPFlags(flags); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
