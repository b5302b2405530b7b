package stats

import (
	"strings"

	"github.com/forPelevin/diarcsv/internal/domain/transcript"
	"github.com/forPelevin/diarcsv/internal/types"
)

type Speaker struct {
	Name     string
	Segments int
	Words    int
	Duration float64
}

// Summarize aggregates per-speaker totals over collated records.
// Speakers are listed in the order they first speak.
func Summarize(records []types.Record) []Speaker {
	idx := map[string]int{}
	var out []Speaker
	for _, r := range records {
		i, ok := idx[r.Speaker]
		if !ok {
			i = len(out)
			idx[r.Speaker] = i
			out = append(out, Speaker{Name: r.Speaker})
		}
		out[i].Segments++
		out[i].Words += len(strings.Fields(r.Text))
		out[i].Duration = transcript.Round(out[i].Duration+r.Duration, 2)
	}
	return out
}
