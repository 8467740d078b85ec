// Package cli implements the vrpplot command-line interface.
//
// The tool has a single job: read the route solution exported by the
// Clarke-Wright solver and draw it as a labeled PNG plot. Run with no
// arguments it reads solucion_rutas.csv and writes Grafica1.png; an
// optional positional argument overrides the input file. Cosmetic plot
// parameters can be adjusted through an optional vrpplot.toml file.
//
// All output goes to stderr through charmbracelet/log; --verbose (-v)
// enables debug-level logging. The logger travels on the context so
// command code never reaches for a global.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tebanduarte2/VRP-Clarke-Wright/pkg/buildinfo"
)

const (
	// defaultInput is the solution file the solver writes next to the binary.
	defaultInput = "solucion_rutas.csv"
	// defaultOutput is the fixed output image path.
	defaultOutput = "Grafica1.png"
	// defaultConfig is the optional style file looked up in the working directory.
	defaultConfig = "vrpplot.toml"
)

// Execute runs the vrpplot CLI under ctx and returns an error if the
// command fails.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		cfgPath string
	)

	root := &cobra.Command{
		Use:          "vrpplot [file]",
		Short:        "vrpplot draws CVRP route solutions as labeled plots",
		Long:         `vrpplot reads the route solution CSV exported by the Clarke-Wright solver and renders every route as a colored, annotated polyline in a single PNG image.`,
		Version:      buildinfo.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if verbose {
				// Tag debug output with a per-invocation id so interleaved
				// runs in CI logs stay distinguishable.
				logger = logger.With("run", uuid.NewString()[:8])
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), input, cfgPath)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&cfgPath, "config", defaultConfig, "style file (TOML, optional)")

	return root.ExecuteContext(ctx)
}
