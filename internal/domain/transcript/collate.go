package transcript

import (
	"fmt"
	"math"
	"strconv"

	"github.com/forPelevin/diarcsv/internal/types"
)

// Collate flattens the document into one record per segment, in input order.
// Segments must already be validated by the decoder.
func Collate(doc types.Document) []types.Record {
	out := make([]types.Record, 0, len(doc.Speakers))
	for _, s := range doc.Speakers {
		start, end := s.Start(), s.End()
		out = append(out, types.Record{
			Duration:     Round(end-start, 2),
			Speaker:      s.Speaker,
			TimeBegin:    FormatTimestamp(start),
			TimeEnd:      FormatTimestamp(end),
			Text:         s.Text,
			StartAbsTime: s.Timestamp[0],
		})
	}
	return out
}

// FormatTimestamp renders seconds as HH:MM:SS.s.
func FormatTimestamp(sec float64) string {
	hours := math.Floor(sec / 3600)
	minutes := math.Floor(math.Mod(sec, 3600) / 60)
	rest := math.Mod(sec, 60)
	return fmt.Sprintf("%02d:%02d:%04.1f", int64(hours), int64(minutes), rest)
}

// Round rounds x to the given number of decimal places. Rounding follows the
// exact binary value, so 2.675 becomes 2.67.
func Round(x float64, places int) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return f
}
