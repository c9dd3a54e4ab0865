package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"fracture-viewer/internal/config"
	"fracture-viewer/internal/preset"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	presetFile := flag.String("presets", "", "YAML case library (default: built-in cases)")
	texturePath := flag.String("texture", "", "Optional bone surface texture (PNG/JPEG/TGA)")

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
	cfg.Resolve(config.Flags{PresetFile: *presetFile})
	if *texturePath != "" {
		cfg.TexturePath = *texturePath
	}

	lib := preset.Default()
	if cfg.PresetFile != "" {
		var err error
		lib, err = preset.Load(cfg.PresetFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
			os.Exit(1)
		}
	}

	game := NewGame(cfg, lib)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("fracture viewer")
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
