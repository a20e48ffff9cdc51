package output

import (
	"bytes"
	"fmt"

	"github.com/corridormc/corridor-pricer/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	cfg := result.Config
	fmt.Fprintln(&buf, "CORRIDOR MONTE CARLO RUN")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Steps=%d Paths=%d Horizon=%s Rate=%s Vol=%s Corr=%s Band=%s\n",
		cfg.NumSteps,
		cfg.NumPaths,
		FormatParameter(cfg.Horizon),
		FormatParameter(cfg.RiskFreeRate),
		FormatParameter(cfg.Volatility),
		FormatParameter(cfg.Correlation),
		FormatParameter(cfg.CorridorWidth),
	)
	fmt.Fprintf(&buf, "Layout=%s Workers=%d Seed=%d\n", result.Layout, result.Workers, cfg.Seed)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Sample mean:      %s\n", FormatEstimate(result.Result.SampleMean))
	fmt.Fprintf(&buf, "Std error (mean): %s\n", FormatEstimate(result.Result.SampleStdError))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Timings: generate=%s simulate=%s transfer=%s aggregate=%s\n",
		result.Timings.Generation,
		result.Timings.Simulation,
		result.Timings.Transfer,
		result.Timings.Aggregation,
	)
	return buf.Bytes(), nil
}
