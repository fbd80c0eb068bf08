// Command splinesample samples a spline described by a YAML file and
// prints the resulting polylines.
package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/curvekit/splinesample"
	"github.com/curvekit/splinesample/splinefile"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splinesample",
		Short: "Sample animation-curve splines into polylines",
	}

	rootCmd.AddCommand(sampleCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sampleCmd() *cobra.Command {
	var (
		min, max            float64
		timeScale, valScale float64
		tolerance           float64
		sourceTracking      bool
		verbose             bool
	)

	cmd := &cobra.Command{
		Use:   "sample [spline.yaml]",
		Short: "Sample a spline over an interval and print its polylines as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if verbose {
				splinesample.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return runSample(args[0], min, max, timeScale, valScale, tolerance, sourceTracking)
		},
	}

	cmd.Flags().Float64Var(&min, "min", 0, "interval start time")
	cmd.Flags().Float64Var(&max, "max", 1, "interval end time")
	cmd.Flags().Float64Var(&timeScale, "time-scale", 1, "tolerance units per time unit")
	cmd.Flags().Float64Var(&valScale, "value-scale", 1, "tolerance units per value unit")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.01, "maximum deviation from the true curve")
	cmd.Flags().BoolVar(&sourceTracking, "sources", false, "include each vertex's provenance in the output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log sampling diagnostics to stderr")

	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spline.yaml]",
		Short: "Parse a spline description and report any errors, without sampling",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := loadSplineData(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", args[0])
			return nil
		},
	}
}

func loadSplineData(path string) (*splinesample.SplineData, error) {
	s, err := splinefile.Load(path)
	if err != nil {
		return nil, err
	}
	return s.ToSplineData()
}

func runSample(path string, min, max, timeScale, valScale, tolerance float64, sourceTracking bool) error {
	data, err := loadSplineData(path)
	if err != nil {
		return err
	}

	interval := splinesample.Interval{Min: min, Max: max}

	var sink splinesample.Sink
	if sourceTracking {
		sink = splinesample.NewSourceTrackingSink()
	} else {
		sink = splinesample.NewPolylineSink()
	}

	ok, err := splinesample.Sample(data, interval, timeScale, valScale, tolerance, sink)
	if err != nil {
		return fmt.Errorf("sampling %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("sampling %s: rejected", path)
	}

	return writeCSV(sink)
}

func writeCSV(sink splinesample.Sink) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	switch s := sink.(type) {
	case *splinesample.PolylineSink:
		if err := w.Write([]string{"polyline", "time", "value"}); err != nil {
			return err
		}
		for i, pl := range s.Polylines {
			for _, v := range pl {
				if err := w.Write([]string{strconv.Itoa(i), formatFloat(v.Time), formatFloat(v.Value)}); err != nil {
					return err
				}
			}
		}
	case *splinesample.SourceTrackingSink:
		if err := w.Write([]string{"polyline", "source", "time", "value"}); err != nil {
			return err
		}
		for i, pl := range s.Polylines {
			source := s.Sources[i].String()
			for _, v := range pl {
				if err := w.Write([]string{strconv.Itoa(i), source, formatFloat(v.Time), formatFloat(v.Value)}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
