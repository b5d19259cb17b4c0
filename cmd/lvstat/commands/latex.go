package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvstat/latex"
)

func newLatexCommand(viperCfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latex [ROWS]",
		Short: "Format a numeric matrix as a LaTeX matrix environment",
		Long: `Format a numeric matrix as LaTeX.

Rows are separated by ';' or newlines, cells by ',' or whitespace.
Without an argument the matrix is read from stdin.

  lvstat latex "3,4,5;6,7,9;4,5,122"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, viperCfg)
			if err != nil {
				return err
			}

			src := ""
			if len(args) == 1 {
				src = args[0]
			} else {
				raw, readErr := io.ReadAll(cmd.InOrStdin())
				if readErr != nil {
					return fmt.Errorf("read stdin: %w", readErr)
				}
				src = string(raw)
			}

			cells := splitMatrix(src)

			env, err := latex.ParseEnvironment(cfg.Latex.Environment)
			if err != nil {
				return err
			}
			logger.Debug("formatting matrix", "rows", len(cells), "environment", env, "precision", cfg.Latex.Precision)

			out, err := formatCells(cells, latex.WithEnvironment(env), latex.WithPrecision(cfg.Latex.Precision))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().String("env", "", "matrix environment (bmatrix, pmatrix, vmatrix, Vmatrix, Bmatrix, matrix)")
	cmd.Flags().Int("precision", 0, "fixed decimals for floats; -1 for shortest form")
	bindFlag(viperCfg, cmd, "latex.environment", "env")
	bindFlag(viperCfg, cmd, "latex.precision", "precision")

	return cmd
}

// splitMatrix reads "1,2;3,4" style text into cell literals. Blank rows are
// skipped; shape checks are left to latex.Format so errors carry its sentinel.
func splitMatrix(src string) [][]string {
	var rows [][]string
	for _, line := range strings.FieldsFunc(src, func(r rune) bool { return r == ';' || r == '\n' }) {
		cells := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}

	return rows
}

// formatCells renders integer input as integers and anything else as floats,
// so "3,4" prints 3 & 4 while "3.0,4" prints 3.0 & 4.0.
func formatCells(cells [][]string, opts ...latex.Option) (string, error) {
	if ints, ok := parseInts(cells); ok {
		return latex.Format(ints, opts...)
	}

	floats := make([][]float64, len(cells))
	for i, row := range cells {
		floats[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return "", fmt.Errorf("row %d: %w", i+1, err)
			}
			floats[i][j] = v
		}
	}

	return latex.Format(floats, opts...)
}

func parseInts(cells [][]string) ([][]int64, bool) {
	ints := make([][]int64, len(cells))
	for i, row := range cells {
		ints[i] = make([]int64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, false
			}
			ints[i][j] = v
		}
	}

	return ints, true
}
