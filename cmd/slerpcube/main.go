// Command slerpcube renders a cube turning between two orientations, one
// image per interpolation step, to show how quaternion slerp behaves.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configFile string
	outputDir  string
	format     string
	workers    int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	cmd := &cobra.Command{
		Use:   "slerpcube",
		Short: "Render quaternion rotations of a cube to WebP or TGA",
		Long: `slerpcube renders a unit cube oriented by quaternions.

  slerp    interpolate between two Euler orientations, one image per frame
  compose  multiply two Euler rotations and render the result

Settings come from an optional YAML file (--config); flags override it.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&rf.configFile, "config", "", "path to a YAML config file")
	pf.StringVar(&rf.outputDir, "output", "", "output directory (default: ./frames)")
	pf.StringVar(&rf.format, "format", "", "image format: webp or tga (default: webp)")
	pf.IntVar(&rf.workers, "workers", 0, "number of render workers (default: NumCPU)")
	pf.BoolVarP(&rf.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newSlerpCmd(&rf), newComposeCmd(&rf))
	return cmd
}
