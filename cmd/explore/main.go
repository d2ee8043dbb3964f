package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"goexplore/adapters/tabular"
	"goexplore/app"
	"goexplore/domain/core"
	"goexplore/domain/explore"
	"goexplore/internal"
	"goexplore/internal/config"
	"goexplore/internal/render"
)

func main() {
	var (
		column  string
		sheet   string
		output  string
		noColor bool
		alpha   float64
	)

	rootCmd := &cobra.Command{
		Use:   "goexplore <file>",
		Short: "Column-by-column exploration of a tabular dataset",
		Long: `goexplore reports descriptive statistics, normality checks and
suspicious-value findings for every column of a CSV or XLSX file.

Example: goexplore data.csv --column price --output ./reports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("alpha") {
				cfg.Alpha = alpha
			}
			if noColor {
				cfg.Color = false
			}
			if output != "" {
				cfg.OutputPath = output
			}
			return runExplore(args[0], column, sheet, cfg)
		},
	}

	rootCmd.Flags().StringVar(&column, "column", "", "Explore a single column by name")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet to read (default Sheet1)")
	rootCmd.Flags().StringVar(&output, "output", "", "Tee the plain report to a file or directory")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI styling")
	rootCmd.Flags().Float64Var(&alpha, "alpha", config.Default().Alpha, "Significance level for the normality tests")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runExplore(path, column, sheet string, cfg *config.Config) error {
	logger := internal.DefaultLogger
	runID := core.NewRunID()
	logger.Info("starting exploration run %s for %s", runID, path)

	dataset, err := tabular.NewReader(path, sheet).Read()
	if err != nil {
		return err
	}

	service := app.NewExplorerService(cfg.Alpha, cfg.TopShareThreshold, cfg.MaxShapiroSize)
	var report explore.Report
	if column != "" {
		report, err = service.ExploreColumnByName(dataset, column)
	} else {
		report, err = service.ExploreTable(dataset)
	}
	if core.IsColumnNotFound(err) {
		return fmt.Errorf("%w (columns: %s)", err, strings.Join(columnNames(dataset), ", "))
	}
	if err != nil {
		return err
	}

	writer := render.NewWriter(os.Stdout, cfg.Color)
	if cfg.OutputPath != "" {
		label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		teePath, err := render.OutputFilePath(cfg.OutputPath, label)
		if err != nil {
			return err
		}
		tee, err := os.OpenFile(teePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return err
		}
		defer tee.Close()
		writer = writer.WithTee(tee)
		logger.Info("teeing report to %s", teePath)
	}

	writer.WriteReport(report)
	return nil
}

func columnNames(ds explore.Dataset) []string {
	names := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		names[i] = col.Name
	}
	return names
}
