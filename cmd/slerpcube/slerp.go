package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quatrot/internal/batch"
	"quatrot/internal/config"
	"quatrot/internal/track"
)

func newSlerpCmd(rf *rootFlags) *cobra.Command {
	var (
		frames int
		mode   string
		sheet  bool
	)

	cmd := &cobra.Command{
		Use:   "slerp",
		Short: "Render the interpolation between the start and end orientations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf, config.Flags{Frames: frames, Mode: mode})
			if err != nil {
				return err
			}
			if sheet {
				cfg.ContactSheet = true
			}

			log, err := newLogger(rf.verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			start := track.EulerDeg(*cfg.Start)
			end := track.EulerDeg(*cfg.End)
			steps, err := track.Sample(start, end, cfg.Frames, cfg.Mode)
			if err != nil {
				return err
			}

			bcfg, err := batchConfig(cfg, log)
			if err != nil {
				return err
			}

			log.Info("rendering",
				zap.Int("frames", cfg.Frames),
				zap.String("mode", cfg.Mode),
				zap.Float32("start_end_dot", start.Dot(end)),
				zap.Int("workers", cfg.Workers),
				zap.String("output", cfg.OutputDir))

			results, err := batch.Run(cmd.Context(), bcfg, steps)
			if err != nil {
				return err
			}

			manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
			if err := batch.WriteManifest(manifestPath, steps, results); err != nil {
				log.Warn("manifest write failed", zap.Error(err))
			} else {
				log.Info("manifest written", zap.String("path", manifestPath))
			}

			failed := 0
			for _, r := range results {
				if !r.Success {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d frames failed", failed, len(results))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&frames, "frames", 0, "number of frames including both ends (default: 24)")
	f.StringVar(&mode, "mode", "", "slerp (may take the long arc) or shortest (default: slerp)")
	f.BoolVar(&sheet, "sheet", false, "also write a labelled contact sheet")
	return cmd
}
