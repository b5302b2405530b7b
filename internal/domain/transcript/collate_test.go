package transcript

import (
	"encoding/json"
	"testing"

	"github.com/forPelevin/diarcsv/internal/types"
)

func TestFormatTimestamp(t *testing.T) {
	tests := map[float64]string{
		0:       "00:00:00.0",
		3725.3:  "01:02:05.3",
		5.3:     "00:00:05.3",
		59.4:    "00:00:59.4",
		61:      "00:01:01.0",
		36000.5: "10:00:00.5",
	}
	for in, want := range tests {
		if got := FormatTimestamp(in); got != want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{2.0, 2, 2.0},
		{1.234, 2, 1.23},
		{0.7 + 0.33, 1, 1.0},
		{2.675, 2, 2.67},
		{4.0 - 0.1, 1, 3.9},
	}
	for _, tt := range tests {
		if got := Round(tt.x, tt.places); got != tt.want {
			t.Fatalf("Round(%v, %d) = %v, want %v", tt.x, tt.places, got, tt.want)
		}
	}
}

func TestCollate_PreservesOrderAndFields(t *testing.T) {
	doc := types.Document{Speakers: []types.SpeakerSegment{
		{Speaker: "B", Timestamp: []json.Number{"10.5", "12.3"}, Text: " later "},
		{Speaker: "A", Timestamp: []json.Number{"0", "3725.3"}, Text: "earlier"},
	}}

	got := Collate(doc)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	first := got[0]
	if first.Speaker != "B" || first.Text != " later " {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.RowID != 0 || first.WordCount != 0 {
		t.Fatalf("expected unset rowid and zero word count, got %+v", first)
	}
	if first.Duration != 1.8 {
		t.Fatalf("unexpected duration: %v", first.Duration)
	}
	if first.TimeBegin != "00:00:10.5" || first.TimeEnd != "00:00:12.3" {
		t.Fatalf("unexpected times: %s - %s", first.TimeBegin, first.TimeEnd)
	}
	if first.StartAbsTime.String() != "10.5" {
		t.Fatalf("unexpected start_abs_time: %s", first.StartAbsTime)
	}
	if got[1].TimeEnd != "01:02:05.3" || got[1].StartAbsTime.String() != "0" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
}

func TestCollate_Empty(t *testing.T) {
	if got := Collate(types.Document{}); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestRelabel(t *testing.T) {
	doc := types.Document{Speakers: []types.SpeakerSegment{
		{Speaker: "SPEAKER_00"},
		{Speaker: "SPEAKER_01"},
		{Speaker: "SPEAKER_02"},
	}}
	got := Relabel(doc, map[string]string{"SPEAKER_00": "Alice", "SPEAKER_01": "Bob"})

	want := []string{"Alice", "Bob", "SPEAKER_02"}
	for i, w := range want {
		if got.Speakers[i].Speaker != w {
			t.Fatalf("speaker %d = %q, want %q", i, got.Speakers[i].Speaker, w)
		}
	}
	if doc.Speakers[0].Speaker != "SPEAKER_00" {
		t.Fatalf("expected input document to be left untouched")
	}
}
