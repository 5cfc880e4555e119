package headless

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/flow-garden/internal/flow"
	"github.com/vovakirdan/flow-garden/internal/registry"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TextReporter prints one line per update: the update number, time, every
// state value, the input signal and the draws due that tick.
type TextReporter struct {
	w          io.Writer
	styled     bool
	headerDone bool
}

// NewTextReporter writes to w. With styled set, lines carry ANSI styling.
func NewTextReporter(w io.Writer, styled bool) *TextReporter {
	return &TextReporter{w: w, styled: styled}
}

func (t *TextReporter) style(s lipgloss.Style, text string) string {
	if !t.styled {
		return text
	}
	return s.Render(text)
}

// Report implements Reporter.
func (t *TextReporter) Report(r Report) {
	if !t.headerDone {
		cols := append([]string{"update", "t"}, r.State.Names...)
		cols = append(cols, "input", "draws")
		fmt.Fprintln(t.w, t.style(headerStyle, strings.Join(cols, "\t")))
		t.headerDone = true
	}

	fields := []string{strconv.Itoa(r.Update), formatFloat(r.State.Time)}
	for _, v := range r.State.Values {
		fields = append(fields, formatFloat(v))
	}
	input := "-"
	if r.Input {
		input = t.style(inputStyle, "on")
	}
	fields = append(fields, input, t.style(eventStyle, FormatDraws(r.Draws)))
	fmt.Fprintln(t.w, strings.Join(fields, "\t"))
}

// FormatDraws lists draws as "event:handle" pairs.
func FormatDraws(draws []flow.Draw) string {
	if len(draws) == 0 {
		return "none"
	}
	parts := make([]string, len(draws))
	for i, d := range draws {
		parts[i] = fmt.Sprintf("%s:%s", d.Event, d.Handle)
	}
	return strings.Join(parts, " ")
}

// RenderScenarios renders the scenario catalog as an ID/title table.
func RenderScenarios(scenarios []registry.ScenarioInfo, styled bool) string {
	tbl := newTable(styled).Headers("ID", "Title")
	for _, s := range scenarios {
		tbl = tbl.Row(s.ID, s.Title)
	}
	return tbl.String()
}

func newTable(styled bool) *table.Table {
	tbl := table.New()
	if !styled {
		return tbl.Border(lipgloss.HiddenBorder())
	}
	return tbl.Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// RenderHistory renders the newest limit samples as a table. A limit of
// zero or less renders every sample.
func RenderHistory(samples []flow.Sample, names []string, limit int, styled bool) string {
	if limit > 0 && len(samples) > limit {
		samples = samples[len(samples)-limit:]
	}

	tbl := newTable(styled).Headers(append([]string{"t"}, names...)...)

	for _, s := range samples {
		row := []string{formatFloat(s.Time)}
		for _, v := range s.Values {
			row = append(row, formatFloat(v))
		}
		tbl = tbl.Row(row...)
	}
	return tbl.String()
}

// RenderSummary describes how a run ended.
func RenderSummary(sum Summary, styled bool) string {
	var sb strings.Builder
	title := "run finished"
	if sum.Canceled {
		title = "run canceled"
	}
	if styled {
		title = headerStyle.Render(title)
	}
	fmt.Fprintf(&sb, "%s: %d frames, %d updates, t=%s, %d history samples\n",
		title, sum.Frames, sum.Updates, formatFloat(sum.Final.Time), sum.HistoryLen)
	for i, name := range sum.Final.Names {
		if i < len(sum.Final.Values) {
			fmt.Fprintf(&sb, "  %s = %s\n", name, formatFloat(sum.Final.Values[i]))
		}
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
