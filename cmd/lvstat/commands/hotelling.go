package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvstat/dataset"
	"github.com/katalvlaran/lvstat/hotelling"
	"github.com/katalvlaran/lvstat/matrix"
)

// ErrSampleFiles is returned when only one of --x/--y is given.
var ErrSampleFiles = errors.New("--x and --y must be given together")

type hotellingFlags struct {
	xPath, yPath       string
	speciesX, speciesY string
	features           []int
}

func newHotellingCommand(viperCfg *viper.Viper) *cobra.Command {
	var flags hotellingFlags

	cmd := &cobra.Command{
		Use:   "hotelling",
		Short: "Run Hotelling's two-sample T² test",
		Long: `Run Hotelling's two-sample T² test.

With --x and --y the samples are read from numeric CSV files (rows are
observations). Otherwise two iris species are compared, by default
versicolor and virginica on sepal length and width.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd, viperCfg)
			if err != nil {
				return err
			}

			x, y, err := loadSamples(flags, logger)
			if err != nil {
				return err
			}

			res, err := hotelling.TwoSample(x, y, hotelling.WithLogger(logger))
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), res, cfg.Output.Format, cfg.Hotelling.Alpha)
		},
	}

	cmd.Flags().StringVar(&flags.xPath, "x", "", "CSV file with the first sample")
	cmd.Flags().StringVar(&flags.yPath, "y", "", "CSV file with the second sample")
	cmd.Flags().StringVar(&flags.speciesX, "species-x", dataset.Versicolor, "iris species for the first sample")
	cmd.Flags().StringVar(&flags.speciesY, "species-y", dataset.Virginica, "iris species for the second sample")
	cmd.Flags().IntSliceVar(&flags.features, "features",
		[]int{dataset.SepalLength, dataset.SepalWidth}, "iris feature columns (0-3)")
	cmd.Flags().String("format", "", "output format: text, table or yaml")
	cmd.Flags().Float64("alpha", 0, "significance level for the verdict")
	bindFlag(viperCfg, cmd, "output.format", "format")
	bindFlag(viperCfg, cmd, "hotelling.alpha", "alpha")

	return cmd
}

func loadSamples(flags hotellingFlags, logger *slog.Logger) (*matrix.Dense, *matrix.Dense, error) {
	switch {
	case flags.xPath != "" && flags.yPath != "":
		x, err := loadCSVFile(flags.xPath)
		if err != nil {
			return nil, nil, err
		}
		y, err := loadCSVFile(flags.yPath)
		if err != nil {
			return nil, nil, err
		}
		logSamples(logger, "loaded samples", x, y, "x", flags.xPath, "y", flags.yPath)

		return x, y, nil
	case flags.xPath != "" || flags.yPath != "":
		return nil, nil, ErrSampleFiles
	}

	ir, err := dataset.LoadIris()
	if err != nil {
		return nil, nil, err
	}
	x, err := ir.Select(flags.speciesX, flags.features...)
	if err != nil {
		return nil, nil, err
	}
	y, err := ir.Select(flags.speciesY, flags.features...)
	if err != nil {
		return nil, nil, err
	}
	logSamples(logger, "selected iris samples", x, y,
		"x", flags.speciesX, "y", flags.speciesY, "features", flags.features)

	return x, y, nil
}

func loadCSVFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := dataset.LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// logSamples logs msg at debug level with both sample shapes appended to args.
func logSamples(logger *slog.Logger, msg string, x, y *matrix.Dense, args ...any) {
	n1, p1 := x.Shape()
	n2, p2 := y.Shape()
	logger.Debug(msg, append(args, "n1", n1, "p1", p1, "n2", n2, "p2", p2)...)
}
