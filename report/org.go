package report

import (
	"bytes"
	"text/template"
)

var orgFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// RenderOrg renders the run as an Org-mode block suitable for pasting into
// a trading journal. Structured facts live in PROPERTIES drawers so they
// stay searchable.
func RenderOrg(r *Run) (string, error) {
	t, err := template.New("correlations").Funcs(orgFuncs).Parse(orgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const orgTemplate = `* HABIT CORRELATIONS [{{.Generated.Format "2006-01-02 Mon 15:04"}}]
:PROPERTIES:
:TRADES:       {{.TradeCount}}
:HABITS:       {{.HabitCount}}
:LIMIT:        {{.Limit}}
:MIN_PER_SIDE: {{.MinPerSide}}
:RESULTS:      {{len .Correlations}}
:END:
{{- if not .Correlations}}

No habit has enough data on both sides of its partition yet.
{{- end}}
{{- range $i, $c := .Correlations}}

** {{inc $i}}. {{$c.HabitEmoji}} {{$c.HabitLabel}}
:PROPERTIES:
:HABIT_ID:    {{$c.HabitID}}
:CONFIDENCE:  {{$c.Confidence}}
:SAMPLE_SIZE: {{$c.SampleSize}}
:WIN_RATE:    {{printf "%.1f" $c.WithHabit.WinRate}} vs {{printf "%.1f" $c.WithoutHabit.WinRate}}
:AVG_PNL:     {{printf "%.2f" $c.WithHabit.AvgPnL}} vs {{printf "%.2f" $c.WithoutHabit.AvgPnL}}
:WR_DELTA:    {{printf "%.1f" $c.WinRateImprovement}}
:PNL_DELTA:   {{printf "%.2f" $c.AvgPnLImprovement}}
:END:

{{$c.PrimaryInsight}}
{{- range $c.SecondaryInsights}}
- {{.}}
{{- end}}
{{- end}}
`
