package turns

import (
	"strings"

	"github.com/forPelevin/diarcsv/internal/domain/transcript"
	"github.com/forPelevin/diarcsv/internal/types"
)

type Options struct {
	// NumberFinal assigns a rowid to the last turn as well. Without it the
	// last turn is emitted with an unset rowid.
	NumberFinal bool
}

// Merge coalesces consecutive records of the same speaker into turns.
// Records are taken in the given order; nothing is sorted.
func Merge(records []types.Record, opts Options) []types.Turn {
	if len(records) == 0 {
		return []types.Turn{}
	}

	var out []types.Turn
	cur := records[0]
	rowID := 0
	for _, next := range records[1:] {
		if next.Speaker == cur.Speaker {
			cur.Text += SeparatorFor(cur.Text) + strings.TrimSpace(next.Text)
			cur.WordCount++
			cur.Duration = transcript.Round(cur.Duration+next.Duration, 1)
			cur.TimeEnd = next.TimeEnd
			continue
		}
		rowID++
		cur.RowID = rowID
		out = append(out, finish(cur))
		cur = next
	}
	if opts.NumberFinal {
		rowID++
		cur.RowID = rowID
	}
	return append(out, finish(cur))
}

// SeparatorFor picks the joiner for the next piece of text: a newline after
// a finished sentence, a space otherwise.
func SeparatorFor(text string) string {
	if strings.HasSuffix(text, ".") {
		return "\n"
	}
	return " "
}

func finish(t types.Turn) types.Turn {
	t.Duration = transcript.Round(t.Duration, 1)
	return t
}
