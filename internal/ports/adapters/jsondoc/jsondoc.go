package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/forPelevin/diarcsv/internal/types"
)

// SyntaxError reports input that could not be decoded as JSON.
type SyntaxError struct {
	Offset int64
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("Invalid JSON input. %s (offset %d)", e.Detail, e.Offset)
	}
	return "Invalid JSON input. " + e.Detail
}

func (e *SyntaxError) Unwrap() error { return types.ErrInvalidJSON }

// SchemaError reports well-formed JSON that is not a speaker transcript.
// Index is -1 for document-level problems.
type SchemaError struct {
	Index int
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", types.ErrSchema, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: speakers[%d].%s: %s", types.ErrSchema, e.Index, e.Field, e.Msg)
}

func (e *SchemaError) Unwrap() error { return types.ErrSchema }

type rawDocument struct {
	Speakers *[]rawSegment `json:"speakers"`
}

type rawSegment struct {
	Speaker   *string            `json:"speaker"`
	Timestamp *[]json.RawMessage `json:"timestamp"`
	Text      *string            `json:"text"`
}

type Decoder struct{}

func New() *Decoder { return &Decoder{} }

func (d *Decoder) Decode(raw []byte) (types.Document, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return types.Document{}, &SyntaxError{Offset: se.Offset, Detail: se.Error()}
		}
		return types.Document{}, &SyntaxError{Detail: err.Error()}
	}
	if _, ok := probe.(map[string]any); !ok {
		return types.Document{}, &SchemaError{Index: -1, Field: "document", Msg: "must be a JSON object"}
	}

	var rd rawDocument
	if err := json.Unmarshal(raw, &rd); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) {
			return types.Document{}, &SchemaError{Index: -1, Field: fieldOf(te), Msg: fmt.Sprintf("cannot be a JSON %s", te.Value)}
		}
		return types.Document{}, fmt.Errorf("%w: %v", types.ErrSchema, err)
	}
	if rd.Speakers == nil {
		return types.Document{}, &SchemaError{Index: -1, Field: "speakers", Msg: "is missing"}
	}

	doc := types.Document{Speakers: make([]types.SpeakerSegment, 0, len(*rd.Speakers))}
	for i, rs := range *rd.Speakers {
		seg, err := convertSegment(i, rs)
		if err != nil {
			return types.Document{}, err
		}
		doc.Speakers = append(doc.Speakers, seg)
	}
	return doc, nil
}

func convertSegment(i int, rs rawSegment) (types.SpeakerSegment, error) {
	if rs.Speaker == nil {
		return types.SpeakerSegment{}, &SchemaError{Index: i, Field: "speaker", Msg: "is missing"}
	}
	if rs.Text == nil {
		return types.SpeakerSegment{}, &SchemaError{Index: i, Field: "text", Msg: "is missing"}
	}
	if rs.Timestamp == nil {
		return types.SpeakerSegment{}, &SchemaError{Index: i, Field: "timestamp", Msg: "is missing"}
	}
	ts := *rs.Timestamp
	if len(ts) != 2 {
		return types.SpeakerSegment{}, &SchemaError{Index: i, Field: "timestamp", Msg: fmt.Sprintf("must have 2 elements, got %d", len(ts))}
	}

	pair := make([]json.Number, 2)
	vals := [2]float64{}
	for j, elem := range ts {
		n, f, ok := parseNumber(elem)
		if !ok {
			return types.SpeakerSegment{}, &SchemaError{Index: i, Field: fmt.Sprintf("timestamp[%d]", j), Msg: fmt.Sprintf("must be a number, got %s", elem)}
		}
		if f < 0 {
			return types.SpeakerSegment{}, &SchemaError{Index: i, Field: fmt.Sprintf("timestamp[%d]", j), Msg: "must not be negative"}
		}
		pair[j] = n
		vals[j] = f
	}
	if vals[1] < vals[0] {
		return types.SpeakerSegment{}, &SchemaError{Index: i, Field: "timestamp", Msg: fmt.Sprintf("end %s is before start %s", pair[1], pair[0])}
	}

	return types.SpeakerSegment{
		Speaker:   *rs.Speaker,
		Timestamp: pair,
		Text:      *rs.Text,
	}, nil
}

// parseNumber accepts JSON number literals only; quoted numbers are rejected.
func parseNumber(raw json.RawMessage) (json.Number, float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", 0, false
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return "", 0, false
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return "", 0, false
	}
	return json.Number(raw), f, true
}

func fieldOf(te *json.UnmarshalTypeError) string {
	if te.Field == "" {
		return "document"
	}
	return te.Field
}
