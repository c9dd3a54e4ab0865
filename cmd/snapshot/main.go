package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fracture-viewer/internal/config"
	"fracture-viewer/internal/preset"
	"fracture-viewer/internal/snapshot"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	presetFile := flag.String("presets", "", "YAML case library (default: built-in cases)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Render size in pixels (default: 512)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	only := flag.String("only", "", "Render only the case with this name")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		OutputDir:  *outputDir,
		PresetFile: *presetFile,
		Quality:    *quality,
		Workers:    *workers,
		Size:       *size,
	})

	lib := preset.Default()
	if cfg.PresetFile != "" {
		var err error
		lib, err = preset.Load(cfg.PresetFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
			os.Exit(1)
		}
	}

	cases := lib.Cases
	if *only != "" {
		c, ok := lib.ByName(*only)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no case named %q\n", *only)
			os.Exit(1)
		}
		cases = []preset.Case{c}
	}

	if len(cases) == 0 {
		fmt.Println("No cases to render.")
		os.Exit(0)
	}

	fmt.Println("Fracture deformity snapshots → WebP")
	fmt.Printf("Cases: %d, Workers: %d\n", len(cases), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := snapshot.Run(cfg, cases)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(cases))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := snapshot.WriteManifest(manifestPath, cases); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
