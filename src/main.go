package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"PenguinPrep/src/config"
	"PenguinPrep/src/datasource/file"
	"PenguinPrep/src/processor"
	"PenguinPrep/src/storage"
	"PenguinPrep/src/utils"
)

func main() {
	cfg := config.Default()

	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Close()

	if err := run(cfg, logger); err != nil {
		logger.Error(err.Error())
		fmt.Fprintf(os.Stderr, "Preprocessing aborted: %v\n", err)
		os.Exit(1)
	}
}

// run executes one preprocessing pass: resolve the input, load it, clean,
// encode and scale it, then save the processed table. Every stage error
// stops the run before later stages touch the output file.
func run(cfg *config.Config, logger *storage.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.CheckRotate(cfg.LogMaxBytes); err != nil {
		logger.Warning(fmt.Sprintf("log rotation skipped: %v", err))
	}

	path, err := file.ResolveDataPath(cfg.RawDataPath, cfg.FallbackPaths...)
	if err != nil {
		fmt.Println("Raw data file not found. Please ensure the penguins dataset is available.")
		return err
	}

	fmt.Println("=== Starting Penguins Data Preprocessing Pipeline ===")
	logger.Info("preprocessing run started, raw data file: " + path)

	fmt.Println("\n1. Loading raw data...")
	df, err := file.LoadTable(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("File %s not found!\n", path)
		} else {
			fmt.Printf("Error loading data: %v\n", err)
		}
		return err
	}
	rows, cols := df.Dims()
	fmt.Printf("Data loaded successfully. Shape: %s\n", utils.FormatShape(rows, cols))
	logger.Info(fmt.Sprintf("loaded %d rows, %d columns from %s", rows, cols, path))

	fmt.Println("\n2. Preprocessing data...")
	result, err := processor.Preprocess(df, cfg)
	if err != nil {
		fmt.Printf("Error preprocessing data: %v\n", err)
		return err
	}
	logger.Info(fmt.Sprintf("preprocessing done: dropped %d incomplete rows, %d remain",
		result.RowsDropped, result.Table.Nrow()))

	fmt.Println("\n3. Saving processed data...")
	if err := file.SaveTable(result.Table, cfg.OutputPath); err != nil {
		fmt.Printf("Error saving data: %v\n", err)
		return err
	}
	fmt.Printf("Processed data saved to: %s\n", cfg.OutputPath)
	logger.Info("processed data saved to " + cfg.OutputPath)

	fmt.Println("\n=== Preprocessing Pipeline Completed Successfully ===")
	fmt.Printf("Processed data available at: %s\n", cfg.OutputPath)
	fmt.Printf("Features shape: %s\n", utils.FormatShape(result.Features.Dims()))
	fmt.Printf("Target shape: (%d,)\n", result.Target.Len())
	logger.Info(fmt.Sprintf("run complete: table %s, features %s",
		utils.FormatShape(result.Table.Dims()),
		utils.FormatShape(result.Features.Dims())))
	return nil
}
