package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"designlens/pkg/annotate"
	"designlens/pkg/capture"
	"designlens/pkg/colormath"
	"designlens/pkg/compare"
	"designlens/pkg/config"
	"designlens/pkg/extract"
	"designlens/pkg/fetch"
	"designlens/pkg/images"
)

var (
	configPath       string
	sampleRate       int
	maxColors        int
	tolerance        float64
	minRegionPercent float64
	maxDimension     int
	outputPath       string
	capturePath      string
	maxDeltaE        float64
	fuzzyRadius      int
	maxDiffPercent   float64
	diffPath         string
	appVersion       = "0.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "designlens",
	Short: "designlens – color and font extraction for visual QA",
	Long: "Designlens extracts the colors and fonts of a captured asset " +
		"(screenshot or structural capture) with on-image locations, and " +
		"judges color equivalence with the CIEDE2000 perceptual metric.",
}

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract located colors from a raster image",
	Args:  cobra.ExactArgs(1),
	Run:   runExtract,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <capture.json>",
	Short: "Extract colors and fonts from a structural capture file",
	Args:  cobra.ExactArgs(1),
	Run:   runInspect,
}

var diffCmd = &cobra.Command{
	Use:   "diff <hex1> <hex2>",
	Short: "Compute the CIEDE2000 distance between two hex colors",
	Args:  cobra.ExactArgs(2),
	Run:   runDiff,
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <image>",
	Short: "Write a copy of the image with extraction results marked on it",
	Args:  cobra.ExactArgs(1),
	Run:   runAnnotate,
}

var compareCmd = &cobra.Command{
	Use:   "compare <actual> <expected>",
	Short: "Judge whether two images are perceptually equivalent",
	Args:  cobra.ExactArgs(2),
	Run:   runCompare,
}

func init() {
	rootCmd.Version = appVersion
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file with extraction defaults")

	for _, cmd := range []*cobra.Command{extractCmd, annotateCmd} {
		cmd.Flags().IntVar(&sampleRate, "sample-rate", 0, "visit every Nth pixel (default 4)")
		cmd.Flags().IntVar(&maxColors, "max-colors", 0, "maximum colors to report (default 64)")
		cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "RGB distance tolerance for region masks (default 10)")
		cmd.Flags().Float64Var(&minRegionPercent, "min-region-percent", 0, "minimum region size in percent (default 0.1)")
		cmd.Flags().IntVar(&maxDimension, "max-dimension", 0, "downscale limit before region detection (default 500)")
	}
	annotateCmd.Flags().StringVarP(&outputPath, "output", "o", "annotated.png", "output PNG path")
	annotateCmd.Flags().StringVar(&capturePath, "capture", "", "optional capture JSON supplying element metadata")

	compareCmd.Flags().Float64Var(&maxDeltaE, "max-delta-e", 1.0, "per-pixel CIEDE2000 budget")
	compareCmd.Flags().IntVar(&fuzzyRadius, "fuzzy-radius", 0, "match against neighbors within this radius")
	compareCmd.Flags().Float64Var(&maxDiffPercent, "max-diff-percent", 0, "pass when differing pixels stay under this percentage")
	compareCmd.Flags().StringVar(&diffPath, "diff", "", "write a diff PNG on mismatch")

	rootCmd.AddCommand(extractCmd, inspectCmd, diffCmd, annotateCmd, compareCmd)
}

// loadExtractor merges config file values with explicitly set flags.
func loadExtractor(cmd *cobra.Command) *extract.Extractor {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("sample-rate") {
		cfg.SampleRate = sampleRate
	}
	if cmd.Flags().Changed("max-colors") {
		cfg.MaxColors = maxColors
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("min-region-percent") {
		cfg.MinRegionPercent = minRegionPercent
	}
	if cmd.Flags().Changed("max-dimension") {
		cfg.MaxDimension = maxDimension
	}
	return cfg.Extractor()
}

func runExtract(cmd *cobra.Command, args []string) {
	data, err := fetch.Read(args[0])
	if err != nil {
		log.Fatalf("read image: %v", err)
	}

	asset := capture.Asset{Provenance: capture.ProvenanceImage, ImageData: data}
	result, err := loadExtractor(cmd).Extract(asset)
	if err != nil {
		log.Fatalf("extract: %v", err)
	}
	printJSON(result)
}

func runInspect(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("read capture: %v", err)
	}

	var asset capture.Asset
	if err := json.Unmarshal(data, &asset); err != nil {
		log.Fatalf("parse capture: %v", err)
	}
	if asset.Provenance == "" {
		asset.Provenance = capture.ProvenanceStructural
	}

	result, err := loadExtractor(cmd).Extract(asset)
	if err != nil {
		log.Fatalf("extract: %v", err)
	}
	printJSON(result)
}

func runDiff(cmd *cobra.Command, args []string) {
	distance := colormath.DeltaE2000Hex(args[0], args[1])
	fmt.Printf("deltaE2000(%s, %s) = %.4f (%s)\n", args[0], args[1], distance, verdict(distance))
}

// verdict maps a distance onto the usual CIEDE2000 interpretation bands.
func verdict(d float64) string {
	switch {
	case d <= 1:
		return "imperceptible"
	case d <= 3:
		return "perceptible on close inspection"
	case d <= 10:
		return "perceptible at a glance"
	default:
		return "dissimilar"
	}
}

func runAnnotate(cmd *cobra.Command, args []string) {
	data, err := fetch.Read(args[0])
	if err != nil {
		log.Fatalf("read image: %v", err)
	}

	asset := capture.Asset{Provenance: capture.ProvenanceImage, ImageData: data}
	if capturePath != "" {
		captureData, err := os.ReadFile(capturePath)
		if err != nil {
			log.Fatalf("read capture: %v", err)
		}
		var captured capture.Asset
		if err := json.Unmarshal(captureData, &captured); err != nil {
			log.Fatalf("parse capture: %v", err)
		}
		asset.Elements = captured.Elements
	}

	result, err := loadExtractor(cmd).Extract(asset)
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	img, err := images.Decode(data)
	if err != nil {
		log.Fatalf("decode image: %v", err)
	}
	if err := annotate.Save(outputPath, img, annotate.MarksFromResult(result)); err != nil {
		log.Fatalf("annotate: %v", err)
	}
	fmt.Printf("wrote %s (%d colors, %d fonts)\n", outputPath, len(result.Colors), len(result.Fonts))
}

func runCompare(cmd *cobra.Command, args []string) {
	opts := compare.Options{
		MaxDeltaE:           maxDeltaE,
		FuzzyRadius:         fuzzyRadius,
		MaxDifferentPercent: maxDiffPercent,
		DiffPath:            diffPath,
	}
	result, err := compare.Files(args[0], args[1], opts)
	if err != nil {
		log.Fatalf("compare: %v", err)
	}
	printJSON(result)
	if !result.Match {
		os.Exit(1)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
