package identify

import (
	"io"

	"github.com/npillmayer/typefont/core"
	"github.com/npillmayer/typefont/core/percent"
	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders the ranking as a PNG bar chart, one bar per font,
// with the similarity scale fixed to 0…100.
func (r Ranking) WriteChart(title string, w io.Writer) error {
	if len(r) == 0 {
		return core.Error(core.EINVALID, "cannot chart an empty ranking")
	}
	bars := make([]chart.Value, len(r))
	for i, fs := range r {
		label := fs.Name + " " + percent.FromFloat(fs.Similarity).String()
		bars[i] = chart.Value{Value: fs.Similarity, Label: label}
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    128 + 128*len(r),
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot render ranking chart")
	}
	return nil
}
