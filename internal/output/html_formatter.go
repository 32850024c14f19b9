package output

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"io"

	json "github.com/goccy/go-json"
)

// HTMLFormatter produces a standalone HTML report with the yearly table and charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"compact": FormatCompactCurrency,
	"pct":     FormatPercentage,
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		return template.JS(b), err
	},
}).Parse(htmlTemplateSource))

type htmlData struct {
	*Report
	Assumptions    []string
	Charts         []Chart
	Recommendation Recommendation
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHTML writes the HTML report for report to w.
func RenderHTML(w io.Writer, report *Report) error {
	if report == nil || report.Result == nil {
		return errors.New("report has no projection result")
	}
	data := htmlData{
		Report:         report,
		Assumptions:    GenerateAssumptions(report.Inputs),
		Charts:         BuildCharts(report.Result),
		Recommendation: AnalyzeStrategies(report.Comparison),
	}
	return htmlTemplate.Execute(w, data)
}
