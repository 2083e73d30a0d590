package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/trade-tools/estimate-press/pkg/adapters"
	"github.com/trade-tools/estimate-press/pkg/models/api"
	"github.com/trade-tools/estimate-press/pkg/services/report"
)

var (
	inputPath  string
	outputPath string
	tradeID    string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "estimate-press",
		Short: "Render trade estimate payloads to PDF",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a JSON payload file to a PDF document",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the JSON payload file")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path (default: derived filename next to the input)")
	renderCmd.Flags().StringVarP(&tradeID, "trade", "t", "", "Override the payload's trade id")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	var apiReq api.ReportRequest
	if err := json.Unmarshal(raw, &apiReq); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	if tradeID != "" {
		apiReq.TradeType = tradeID
	}

	req := adapters.MapReportRequestApiToDomain(apiReq)

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	renderer := report.NewRenderer(report.DefaultSettings())
	out, err := renderer.Render(ctx, req)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	dest := outputPath
	if dest == "" {
		dest = filepath.Join(filepath.Dir(inputPath), renderer.Filename(req))
	}
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", dest, len(out))
	return nil
}
