package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quatrot/internal/track"
	"quatrot/mathutil"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index      int         `json:"index"`
	T          float32     `json:"t"`
	Quaternion [4]float32  `json:"quaternion"` // x, y, z, w
	Matrix     [16]float32 `json:"matrix"`     // column-major
	Image      string      `json:"image,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// WriteManifest writes the frame list with each frame's orientation.
// results may be shorter than frames; missing entries have no image.
func WriteManifest(path string, frames []track.Frame, results []Result) error {
	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		e := ManifestEntry{
			Index:      f.Index,
			T:          f.T,
			Quaternion: f.Rotation.Array(),
			Matrix:     mathutil.RotationMatrix(f.Rotation),
		}
		if i < len(results) {
			if results[i].Success {
				e.Image = filepath.Base(results[i].Path)
			}
			e.Error = results[i].Error
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
