package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/corridormc/corridor-pricer/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per run).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.RunResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"NumSteps", "NumPaths", "Horizon", "RiskFreeRate", "Volatility", "Correlation", "CorridorWidth", "Seed", "Layout", "Workers", "SampleMean", "SampleStdError"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	cfg := result.Config
	row := []string{
		strconv.Itoa(cfg.NumSteps),
		strconv.Itoa(cfg.NumPaths),
		FormatParameter(cfg.Horizon),
		FormatParameter(cfg.RiskFreeRate),
		FormatParameter(cfg.Volatility),
		FormatParameter(cfg.Correlation),
		FormatParameter(cfg.CorridorWidth),
		strconv.FormatUint(cfg.Seed, 10),
		result.Layout,
		strconv.Itoa(result.Workers),
		FormatEstimate(result.Result.SampleMean),
		FormatEstimate(result.Result.SampleStdError),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
