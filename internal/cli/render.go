package cli

import (
	"context"
	"fmt"

	"github.com/tebanduarte2/VRP-Clarke-Wright/pkg/render"
	"github.com/tebanduarte2/VRP-Clarke-Wright/pkg/routes"
)

// runRender loads the solution at input, logs its summary, and writes
// the plot to the fixed output path. A missing or empty input is not an
// error: the loader's contract is best effort, and the original tool
// exits silently in that case.
func runRender(ctx context.Context, input, cfgPath string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	style, title, err := loadStyle(cfgPath)
	if err != nil {
		return err
	}

	rs := routes.Load(input)
	if len(rs) == 0 {
		logger.Warnf("No routes found in %s", input)
		return nil
	}

	sum := routes.Summarize(rs)
	logger.Infof("Loaded %d routes from %s: %d customers, total distance %.2f",
		len(rs), input, sum.TotalCustomers, sum.TotalDistance)
	for i, r := range sum.Routes {
		logger.Debugf("Route %d: %d customers, distance %.2f", i+1, r.Customers, r.Distance)
	}

	fig, err := render.Render(rs, title, style)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := fig.WritePNG(defaultOutput); err != nil {
		return fmt.Errorf("write %s: %w", defaultOutput, err)
	}

	prog.done(fmt.Sprintf("Generated %s", defaultOutput))
	return nil
}
