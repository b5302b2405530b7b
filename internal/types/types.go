package types

import (
	"encoding/json"
	"errors"
)

var (
	// ErrInvalidJSON marks input that is not valid JSON at all.
	ErrInvalidJSON = errors.New("invalid JSON input")
	// ErrSchema marks valid JSON that does not have the transcript shape.
	ErrSchema = errors.New("invalid transcript")
	// ErrNoTurns is returned when there is nothing to put in the report.
	ErrNoTurns = errors.New("no turns to write")
)

type Document struct {
	Speakers []SpeakerSegment `json:"speakers"`
}

type SpeakerSegment struct {
	Speaker   string        `json:"speaker"`
	Timestamp []json.Number `json:"timestamp"`
	Text      string        `json:"text"`
}

// Start and End assume a validated two-element timestamp.
func (s SpeakerSegment) Start() float64 { return num(s.Timestamp[0]) }
func (s SpeakerSegment) End() float64   { return num(s.Timestamp[1]) }

func num(n json.Number) float64 {
	f, _ := n.Float64()
	return f
}

// Record is one collated segment. Turn has the same columns after merging.
type Record struct {
	RowID     int // 0 means unset
	WordCount int
	Duration  float64
	Speaker   string
	TimeBegin string
	TimeEnd   string
	Text      string

	StartAbsTime json.Number
}

type Turn = Record
