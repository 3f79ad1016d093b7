package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"priceindex/internal/config"
	"priceindex/internal/dataset"
	"priceindex/internal/infrastructure"
	"priceindex/internal/report"
	"priceindex/pkg/bilateral"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	datasetPath := flag.String("dataset", "", "path to the observations file (.csv or .xlsx)")
	sheet := flag.String("sheet", "", "workbook sheet name (xlsx only, defaults to the first sheet)")
	basePeriod := flag.String("base", "", "base period label")
	comparedPeriod := flag.String("compared", "", "compared period label")
	methods := flag.String("methods", "", "comma-separated method names, or \"all\"")
	normalization := flag.Float64("normalization", 0, "index value at no price change (default 100)")
	output := flag.String("output", "", "report file path")
	productCol := flag.String("product-col", "", "product id column name")
	periodCol := flag.String("period-col", "", "time period column name")
	priceCol := flag.String("price-col", "", "price column name")
	quantityCol := flag.String("quantity-col", "", "quantity column name")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags the user actually passed override the file and environment.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["dataset"] {
		cfg.Dataset.Path = *datasetPath
	}
	if set["sheet"] {
		cfg.Dataset.Sheet = *sheet
	}
	if set["base"] {
		cfg.Index.BasePeriod = *basePeriod
	}
	if set["compared"] {
		cfg.Index.ComparedPeriod = *comparedPeriod
	}
	if set["methods"] {
		cfg.Index.Methods = splitMethods(*methods)
	}
	if set["normalization"] {
		cfg.Index.Normalization = *normalization
	}
	if set["output"] {
		cfg.Output.Path = *output
	}
	if set["product-col"] {
		cfg.Index.Columns.ProductID = *productCol
	}
	if set["period-col"] {
		cfg.Index.Columns.TimePeriod = *periodCol
	}
	if set["price-col"] {
		cfg.Index.Columns.Price = *priceCol
	}
	if set["quantity-col"] {
		cfg.Index.Columns.Quantity = *quantityCol
	}
	if set["log-level"] {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, logCloser, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	runID := infrastructure.NewRunID()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	if cfg.Dataset.Path == "" {
		logger.ErrorContext(ctx, "No dataset given",
			"hint", "pass -dataset or set dataset.path in the config file")
		os.Exit(1)
	}
	if cfg.Index.BasePeriod == "" || cfg.Index.ComparedPeriod == "" {
		logger.ErrorContext(ctx, "Both periods are required",
			"base", cfg.Index.BasePeriod,
			"compared", cfg.Index.ComparedPeriod,
			"hint", "pass -base and -compared, or set index.base_period and index.compared_period")
		os.Exit(1)
	}

	selected, err := cfg.Index.SelectedMethods()
	if err != nil {
		logger.ErrorContext(ctx, "Invalid method selection", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Starting index run",
		"version", version,
		"dataset", cfg.Dataset.Path,
		"base_period", cfg.Index.BasePeriod,
		"compared_period", cfg.Index.ComparedPeriod,
		"methods", len(selected),
		"normalization", cfg.Index.Normalization)

	tbl, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Sheet)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load dataset", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "Loaded dataset",
		"path", cfg.Dataset.Path,
		"rows", tbl.Len(),
		"columns", len(tbl.Columns()))

	schema := cfg.Index.Columns.Schema()
	if err := checkQuantityColumn(tbl, schema, selected); err != nil {
		logger.ErrorContext(ctx, "Dataset cannot serve the selected methods", "error", err)
		os.Exit(1)
	}

	results := make([]report.Result, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, method := range selected {
		i, method := i, method
		g.Go(func() error {
			value, err := bilateral.ComputeFromTable(method, tbl,
				cfg.Index.BasePeriod, cfg.Index.ComparedPeriod, schema, cfg.Index.Normalization)
			if err != nil {
				return err
			}
			logger.InfoContext(gctx, "Index computed",
				"method", method.String(),
				"value", value)
			results[i] = report.Result{Method: method.String(), Value: value}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "Index computation failed", "error", err)
		os.Exit(1)
	}

	run := report.Run{
		ID:             runID,
		Dataset:        cfg.Dataset.Path,
		BasePeriod:     cfg.Index.BasePeriod,
		ComparedPeriod: cfg.Index.ComparedPeriod,
		Normalization:  cfg.Index.Normalization,
		ComputedAt:     time.Now().UTC(),
	}
	if err := report.WriteCSV(cfg.Output.Path, run, results); err != nil {
		logger.ErrorContext(ctx, "Failed to write report", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Index run completed",
		"report", cfg.Output.Path,
		"methods", len(results))

	printResults(run, results)
}

// splitMethods turns the -methods flag value into the config list shape.
func splitMethods(value string) []string {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// checkQuantityColumn fails fast when a weighted method is selected but
// the dataset has no quantity column to feed it.
func checkQuantityColumn(tbl *bilateral.Table, schema bilateral.Schema, selected []bilateral.Method) error {
	var weighted []string
	for _, method := range selected {
		if method.RequiresQuantities() {
			weighted = append(weighted, method.String())
		}
	}
	if len(weighted) == 0 {
		return nil
	}

	for _, column := range tbl.Columns() {
		if column == schema.QuantityColumn {
			return nil
		}
	}
	return fmt.Errorf("dataset has no %q column required by: %s",
		schema.QuantityColumn, strings.Join(weighted, ", "))
}

func printResults(run report.Run, results []report.Result) {
	fmt.Printf("\nBilateral price indices, %s -> %s (normalization %g)\n",
		run.BasePeriod, run.ComparedPeriod, run.Normalization)
	fmt.Println("Method       | Index Value")
	fmt.Println("-------------|------------")
	for _, result := range results {
		fmt.Printf("%-12s | %11.6f\n", result.Method, result.Value)
	}
}
