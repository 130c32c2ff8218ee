package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quatrot/internal/config"
	"quatrot/internal/postprocess"
	"quatrot/internal/raster"
	"quatrot/internal/track"
)

// SheetName is the file name of the contact sheet, without extension.
const SheetName = "sheet"

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir    string
	Format       string
	RenderSize   int
	Supersample  int
	Workers      int
	Scene        raster.Options // camera and texture; size comes from RenderSize
	ContactSheet bool
	Logger       *zap.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	T       float32
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a bounded worker pool. Per-frame failures are
// reported in the results; the returned error is only set when the output
// directory or contact sheet cannot be written, or ctx ends the run early.
func Run(ctx context.Context, cfg Config, frames []track.Frame) ([]Result, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	log := cfg.Logger
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	var images []*image.NRGBA
	if cfg.ContactSheet {
		images = make([]*image.NRGBA, total)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", zap.Int64("done", p), zap.Int("total", total), zap.Float64("frames_per_sec", rate))
				}
			}
		}
	}()
	defer close(done)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for i, f := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := fmt.Sprintf("frame_%03d", f.Index)
			img, res := renderFrame(cfg, f, name)
			results[i] = res
			if images != nil {
				images[i] = img
			}
			if !res.Success {
				log.Warn("frame failed", zap.Int("index", f.Index), zap.String("error", res.Error))
			}
			processed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	log.Info("frames rendered", zap.Int("total", total), zap.Duration("elapsed", time.Since(start)))

	if cfg.ContactSheet {
		if err := writeSheet(cfg, frames, images); err != nil {
			return results, err
		}
	}

	return results, nil
}

// RenderOne renders a single frame named name. Used for still images.
func RenderOne(cfg Config, f track.Frame, name string) Result {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Result{Index: f.Index, T: f.T, Error: err.Error()}
	}
	_, res := renderFrame(cfg, f, name)
	return res
}

func renderFrame(cfg Config, f track.Frame, name string) (*image.NRGBA, Result) {
	res := Result{Index: f.Index, T: f.T}

	opts := cfg.Scene
	opts.Size = cfg.RenderSize
	opts.Supersample = cfg.Supersample
	img := raster.RenderMesh(raster.Cube(), f.Rotation, opts)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	res.Path = filepath.Join(cfg.OutputDir, name+"."+cfg.Format)
	if err := writeImage(res.Path, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return nil, res
	}

	res.Success = true
	return img, res
}

func writeSheet(cfg Config, frames []track.Frame, images []*image.NRGBA) error {
	var (
		cells  []*image.NRGBA
		labels []string
	)
	for i, img := range images {
		if img == nil {
			continue
		}
		cells = append(cells, img)
		labels = append(labels, fmt.Sprintf("t=%.2f", frames[i].T))
	}
	if len(cells) == 0 {
		return nil
	}

	sheet := postprocess.ContactSheet(cells, labels, 6)
	path := filepath.Join(cfg.OutputDir, SheetName+"."+cfg.Format)
	if err := writeImage(path, sheet, cfg.Format); err != nil {
		return fmt.Errorf("batch: contact sheet: %w", err)
	}
	cfg.Logger.Info("contact sheet written", zap.String("path", path))
	return nil
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("%s encode: %w", format, err)
	}
	return f.Close()
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case config.FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case config.FormatTGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
