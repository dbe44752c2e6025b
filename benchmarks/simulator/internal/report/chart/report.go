package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/snapshot-chromedp/render"

	"github.com/maypok86/seqlist/benchmarks/simulator/internal/report/simulation"
)

type Chart struct {
	name  string
	dir   string
	table [][]simulation.Result
}

func NewChart(name, dir string, table [][]simulation.Result) *Chart {
	return &Chart{
		name:  name,
		dir:   dir,
		table: table,
	}
}

func (c *Chart) line() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{
			Name: "size",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "moves/op",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: c.name,
			Right: "50%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient: "vertical",
			Right:  "0%",
			Top:    "10%",
		}),
		// for png render
		charts.WithAnimation(false),
	)

	sizes := make([]int, 0, len(c.table[0]))
	for _, r := range c.table[0] {
		sizes = append(sizes, r.Size())
	}

	line = line.SetXAxis(sizes)
	for _, results := range c.table {
		if len(results) == 0 {
			continue
		}
		lineData := make([]opts.LineData, 0, len(results))
		for _, res := range results {
			lineData = append(lineData, opts.LineData{
				Value: res.MovesPerOp(),
			})
		}
		line = line.AddSeries(results[0].Name(), lineData)
	}

	line.SetSeriesOptions(charts.WithLineChartOpts(
		opts.LineChart{
			Smooth: opts.Bool(true),
		}),
	)
	return line
}

func (c *Chart) Report() error {
	if c == nil || len(c.table) == 0 {
		return nil
	}

	imagePath := filepath.Join(c.dir, fmt.Sprintf("%s.png", strings.ToLower(c.name)))

	if err := os.MkdirAll(c.dir, os.ModePerm); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := render.MakeChartSnapshot(c.line().RenderContent(), imagePath); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
