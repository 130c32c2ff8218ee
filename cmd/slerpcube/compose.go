package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quatrot/internal/batch"
	"quatrot/internal/config"
	"quatrot/internal/track"
)

func newComposeCmd(rf *rootFlags) *cobra.Command {
	var (
		first  []float32
		second []float32
		name   string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Render the product of two Euler rotations (second is applied first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(first) != 3 || len(second) != 3 {
				return errors.New("compose: --first and --second take exactly 3 angles")
			}

			cfg, err := loadConfig(rf, config.Flags{})
			if err != nil {
				return err
			}

			log, err := newLogger(rf.verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			q := track.Compose([3]float32(first), [3]float32(second))
			qa := q.Array()
			log.Info("composed rotation",
				zap.Float32s("first", first),
				zap.Float32s("second", second),
				zap.Float32s("quaternion", qa[:]))

			bcfg, err := batchConfig(cfg, log)
			if err != nil {
				return err
			}

			res := batch.RenderOne(bcfg, track.Frame{T: 1, Rotation: q}, name)
			if !res.Success {
				return fmt.Errorf("compose: %s", res.Error)
			}
			log.Info("image written", zap.String("path", res.Path))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float32SliceVar(&first, "first", []float32{0, 0, 0}, "Euler XYZ degrees of the outer rotation")
	f.Float32SliceVar(&second, "second", []float32{0, 0, 0}, "Euler XYZ degrees of the inner rotation")
	f.StringVar(&name, "name", "compose", "output file name without extension")
	return cmd
}
