package csvreport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/forPelevin/diarcsv/internal/types"
)

// Header is the fixed column order of the report.
var Header = []string{
	"rowid",
	"word_count",
	"duration",
	"speaker",
	"time_begin",
	"time_end",
	"text",
	"start_abs_time",
}

type Writer struct{}

func New() *Writer { return &Writer{} }

// WriteTurns writes the header and one row per turn. An empty report is an
// error and nothing is written.
func (cw *Writer) WriteTurns(w io.Writer, turns []types.Turn) error {
	if len(turns) == 0 {
		return types.ErrNoTurns
	}

	cc := csv.NewWriter(w)
	if err := cc.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, t := range turns {
		if err := cc.Write(row(t)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cc.Flush()
	if err := cc.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func row(t types.Turn) []string {
	rowID := ""
	if t.RowID > 0 {
		rowID = strconv.Itoa(t.RowID)
	}
	return []string{
		rowID,
		strconv.Itoa(t.WordCount),
		formatFloat(t.Duration),
		t.Speaker,
		t.TimeBegin,
		t.TimeEnd,
		t.Text,
		t.StartAbsTime.String(),
	}
}

// formatFloat prints the shortest representation but always keeps a
// fractional part: 4 -> "4.0", 2.35 -> "2.35".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
