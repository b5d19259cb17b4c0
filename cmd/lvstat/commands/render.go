package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstat/hotelling"
	"github.com/katalvlaran/lvstat/internal/config"
)

// yamlReport is the machine-readable form of a test result.
type yamlReport struct {
	hotelling.Result `yaml:",inline"`

	Alpha  float64 `yaml:"alpha"`
	Reject bool    `yaml:"reject"`
}

// renderResult writes res in the configured format.
func renderResult(w io.Writer, res *hotelling.Result, format string, alpha float64) error {
	switch format {
	case config.FormatTable:
		_, err := fmt.Fprintln(w, resultTable(res, alpha))

		return err
	case config.FormatYAML:
		out, err := yaml.Marshal(yamlReport{Result: *res, Alpha: alpha, Reject: res.Reject(alpha)})
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = w.Write(out)

		return err
	default:
		return res.WriteReport(w)
	}
}

// resultTable formats res as a go-pretty table with a colored verdict row.
func resultTable(res *hotelling.Result, alpha float64) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Quantity", "Value"})
	tbl.AppendRow(table.Row{"Samples", fmt.Sprintf("%d vs %d", res.N1, res.N2)})
	tbl.AppendRow(table.Row{"T²", hotelling.FormatFloat(res.TSquared)})
	tbl.AppendRow(table.Row{"Test statistic (F)", hotelling.FormatFloat(res.Statistic)})
	tbl.AppendRow(table.Row{"Degrees of freedom", fmt.Sprintf("%d and %d", res.DF1, res.DF2)})
	tbl.AppendRow(table.Row{"p-value", hotelling.FormatFloat(res.PValue)})

	verdict := color.New(color.FgGreen).Sprint("fail to reject H0")
	if res.Reject(alpha) {
		verdict = color.New(color.FgRed).Sprint("reject H0")
	}
	tbl.AppendFooter(table.Row{"alpha = " + strconv.FormatFloat(alpha, 'g', -1, 64), verdict})

	return tbl.Render()
}
