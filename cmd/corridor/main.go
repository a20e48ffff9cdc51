package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corridormc/corridor-pricer/internal/config"
	"github.com/corridormc/corridor-pricer/internal/output"
	"github.com/corridormc/corridor-pricer/internal/polyeval"
	"github.com/corridormc/corridor-pricer/internal/simulation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "corridor",
		Short: "Monte Carlo pricer for a two-leg corridor contract",
		Long: `corridor estimates the expected discounted payoff of a digital
double-corridor contract on two correlated underlyings by simulating
independent paths in parallel and reducing the payoffs to a sample mean
and its standard error.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newPolyCmd(), newExampleConfigCmd())
	return root
}

func newRunCmd() *cobra.Command {
	in := config.RunInput{}
	var configFile, format, outputFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a pricing run",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if configFile != "" {
				loaded, err := parser.LoadFromFile(configFile)
				if err != nil {
					return err
				}
				in = *loaded
			} else if err := parser.ValidateRunInput(&in); err != nil {
				return err
			}

			cfg, err := parser.ToSimulationConfig(&in)
			if err != nil {
				return err
			}

			caps := simulation.QueryCapabilities(in.Workers, in.MemoryBudgetBytes)
			layout, err := simulation.NewLayout(in.Layout, cfg, in.GroupWidth)
			if err != nil {
				return err
			}

			engine := simulation.NewEngine(cfg, layout, caps)
			if verbose {
				engine.Logger = stderrLogger{}
			}

			result, err := engine.Run(cmd.Context())
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, available: %v (aliases: %v)",
					format, output.AvailableFormatterNames(), output.AvailableFormatAliases())
			}
			if outputFile != "" {
				written, err := output.WriteFormatted(formatter, result, outputFile)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", written)
				return nil
			}
			data, err := formatter.Format(result)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML run file (flags are ignored when set)")
	cmd.Flags().IntVar(&in.NumSteps, "steps", 252, "time steps per path")
	cmd.Flags().IntVar(&in.NumPaths, "paths", 262144, "number of simulated paths")
	cmd.Flags().Float64Var(&in.Horizon, "horizon", 1.0, "contract horizon in years")
	cmd.Flags().Float64Var(&in.RiskFreeRate, "rate", 0.02, "risk-free rate")
	cmd.Flags().Float64Var(&in.Volatility, "vol", 0.3, "volatility")
	cmd.Flags().Float64Var(&in.Correlation, "corr", 0.5, "correlation between the two legs")
	cmd.Flags().Float64Var(&in.CorridorWidth, "band", 0, "corridor band half-width (0 = contract default)")
	cmd.Flags().Uint64Var(&in.Seed, "seed", 12345, "random seed")
	cmd.Flags().StringVar(&in.Layout, "layout", "contiguous", "shock buffer layout: contiguous or strided")
	cmd.Flags().IntVar(&in.GroupWidth, "group-width", 0, "strided layout group width (0 = default 256)")
	cmd.Flags().IntVar(&in.Workers, "workers", 0, "parallel workers (0 = all CPUs)")
	cmd.Flags().Int64Var(&in.MemoryBudgetBytes, "memory-budget", 0, "shock buffer budget in bytes (0 = default)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv, json")
	cmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "write the formatted result to a file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log phase progress to stderr")
	return cmd
}

func newPolyCmd() *cobra.Command {
	cfg := polyeval.Config{}

	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Average a polynomial over random inputs (toy workload)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Workers == 0 {
				cfg.Workers = simulation.QueryCapabilities(0, 0).Workers
			}
			result, err := polyeval.Run(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mean over %d elements: %s\n",
				result.NumElements, output.FormatEstimate(result.Mean))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&cfg.Coefficients, "coeffs", []float64{1, 2, 3}, "coefficients in ascending degree order")
	cmd.Flags().IntVar(&cfg.NumElements, "elements", 1<<20, "input vector length")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 0, "parallel workers (0 = all CPUs)")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print an example YAML run file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := config.NewInputParser().CreateExampleRunInput()
			data, err := yaml.Marshal(in)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(data)
			return nil
		},
	}
}

// stderrLogger prints engine diagnostics to stderr.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "info: "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...) }
