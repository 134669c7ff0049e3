package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/entry"
	"github.com/xolan/tlreport/internal/timeutil"
	"github.com/xolan/tlreport/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Location *time.Location // Timezone for start times
	Width    int            // Available width for rendering
	Cursor   int            // Position in indexes of the selected row (-1 for none)
	Offset   int            // First visible position in indexes
	Rows     int            // Maximum rows to render (0 for all)
}

// RenderEntryList renders the entries at the given indexes with aligned
// columns. Carried topics are marked with "^".
func RenderEntryList(entries []entry.Entry, indexes []int, styles ui.Styles, opts EntryRenderOptions) string {
	if len(indexes) == 0 {
		return ""
	}

	end := len(indexes)
	if opts.Rows > 0 && opts.Offset+opts.Rows < end {
		end = opts.Offset + opts.Rows
	}

	indexWidth := len(fmt.Sprintf("[%d]", len(entries)))
	topicWidth := opts.Width - indexWidth - 23 - 8 - 6 - 10 - 10
	if topicWidth < 16 {
		topicWidth = 16
	}

	var b strings.Builder
	for pos := opts.Offset; pos < end; pos++ {
		i := indexes[pos]
		e := entries[i]

		style := styles.EntryNormal
		if pos == opts.Cursor {
			style = styles.EntrySelected
		}

		topic := e.Topic
		if topic == "" {
			topic = "(no topic)"
		}
		topic = runewidth.Truncate(topic, topicWidth, "…")
		if e.Carried() {
			topic = styles.EntryCarried.Render("^" + topic)
		} else {
			topic = " " + topic
		}

		line := fmt.Sprintf("%s %s %s %s %s %s",
			styles.EntryIndex.Render(fmt.Sprintf("%-*s", indexWidth, fmt.Sprintf("[%d]", i+1))),
			styles.EntryTime.Render(fmt.Sprintf("%-23s", timeutil.FormatInstant(e.Start, opts.Location))),
			styles.EntryDuration.Render(fmt.Sprintf("%8s", durationText(e.DurationHours))),
			styles.EntryCoeff.Render(fmt.Sprintf("%6s", cli.FormatNumber(e.Coefficient.Value))),
			styles.EntryCost.Render(fmt.Sprintf("%10s", cli.FormatCost(e.Cost))),
			topic)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// durationText flags empty, negative and unknown sessions with "!"
func durationText(hours float64) string {
	text := cli.FormatHours(hours)
	if hours <= 0 || math.IsNaN(hours) {
		text += "!"
	}
	return text
}

// scrollList keeps a cursor inside a list of n items and an offset that
// keeps the cursor within a window of rows
type scrollList struct {
	cursor int
	offset int
}

func (l *scrollList) move(delta, n, rows int) {
	l.cursor = max(min(l.cursor+delta, n-1), 0)
	rows = max(rows, 1)
	if l.cursor < l.offset {
		l.offset = l.cursor
	} else if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

func (l *scrollList) jump(pos, n, rows int) {
	l.move(pos-l.cursor, n, rows)
}

func renderStat(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

func rule(width int) string {
	return strings.Repeat("─", min(50, max(width, 10)))
}
