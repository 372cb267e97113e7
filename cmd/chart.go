package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataquery-cli/internal/analysis"
	"github.com/KaramelBytes/dataquery-cli/internal/loader"
	"github.com/KaramelBytes/dataquery-cli/internal/query"
)

var (
	chartX          string
	chartY          string
	chartType       string
	chartOutputPath string
)

type chartOutput struct {
	ChartType analysis.ChartType `json:"chart_type"`
	Columns   query.ColumnPair   `json:"columns"`
	Series    []analysis.Point   `json:"series"`
	Insights  []string           `json:"insights"`
}

var chartCmd = &cobra.Command{
	Use:   "chart <file.csv>",
	Short: "Prepare a chart series for two columns and describe it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ct, err := analysis.ParseChartType(chartType)
		if err != nil {
			return err
		}
		t, err := loader.LoadFile(args[0], datasetOptions())
		if err != nil {
			return err
		}
		pts, err := analysis.PrepareChartData(t, chartX, chartY)
		if err != nil {
			return err
		}
		insights, err := analysis.GenerateInsights(t, chartX, chartY)
		if err != nil {
			return err
		}
		res := chartOutput{
			ChartType: ct,
			Columns:   query.ColumnPair{X: chartX, Y: chartY},
			Series:    pts,
			Insights:  insights,
		}
		// Reuse the question renderer for the series table.
		text := query.Result{
			Title:     fmt.Sprintf("%s vs %s", chartY, chartX),
			Response:  strings.Join(insights, "\n"),
			Series:    pts,
			ChartType: ct,
			Columns:   &res.Columns,
		}.Text()
		return writeOutput(text, res, outputOptions{Writer: cmd.OutOrStdout(), OutputPath: chartOutputPath})
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVar(&chartX, "x", "", "column for the x axis")
	chartCmd.Flags().StringVar(&chartY, "y", "", "column for the y axis")
	chartCmd.Flags().StringVar(&chartType, "type", string(analysis.ChartBar), "chart type: bar|line|scatter|area")
	chartCmd.Flags().StringVarP(&chartOutputPath, "output", "o", "", "optional path to write the series")
	_ = chartCmd.MarkFlagRequired("x")
	_ = chartCmd.MarkFlagRequired("y")
}
