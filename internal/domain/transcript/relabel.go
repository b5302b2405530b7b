package transcript

import "github.com/forPelevin/diarcsv/internal/types"

// Relabel returns a copy of doc with speaker labels mapped through names.
// Labels without an entry are kept.
func Relabel(doc types.Document, names map[string]string) types.Document {
	if len(names) == 0 {
		return doc
	}
	out := types.Document{Speakers: make([]types.SpeakerSegment, len(doc.Speakers))}
	for i, s := range doc.Speakers {
		if n, ok := names[s.Speaker]; ok {
			s.Speaker = n
		}
		out.Speakers[i] = s
	}
	return out
}
