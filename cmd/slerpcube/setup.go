package main

import (
	"go.uber.org/zap"

	"quatrot/internal/batch"
	"quatrot/internal/config"
	"quatrot/internal/raster"
	"quatrot/internal/texture"
)

// loadConfig reads the config file if one was given and applies flags.
func loadConfig(rf *rootFlags, flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if rf.configFile != "" {
		var err error
		cfg, err = config.Load(rf.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	flags.OutputDir = rf.outputDir
	flags.Format = rf.format
	flags.Workers = rf.workers
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// batchConfig builds the render settings, loading the texture if configured.
func batchConfig(cfg config.Config, log *zap.Logger) (batch.Config, error) {
	scene := raster.Options{View: raster.DefaultView()}
	if cfg.Texture != "" {
		tex, err := texture.Load(cfg.Texture)
		if err != nil {
			return batch.Config{}, err
		}
		scene.Texture = tex
		log.Debug("texture loaded", zap.String("path", cfg.Texture), zap.Int("width", tex.Bounds().Dx()))
	}

	return batch.Config{
		OutputDir:    cfg.OutputDir,
		Format:       cfg.Format,
		RenderSize:   cfg.RenderSize,
		Supersample:  cfg.Supersample,
		Workers:      cfg.Workers,
		Scene:        scene,
		ContactSheet: cfg.ContactSheet,
		Logger:       log,
	}, nil
}
