package usecase

import (
	"context"
	"io"

	"github.com/forPelevin/diarcsv/internal/domain/stats"
	"github.com/forPelevin/diarcsv/internal/domain/transcript"
	"github.com/forPelevin/diarcsv/internal/domain/turns"
	"github.com/forPelevin/diarcsv/internal/ports"
	"github.com/forPelevin/diarcsv/internal/types"
)

type Deps struct {
	Decoder ports.TranscriptDecoder
	Report  ports.ReportWriter
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Raw          []byte
	SpeakerNames map[string]string
	NumberFinal  bool
	Out          io.Writer
}

type Result struct {
	Segments int
	Turns    []types.Turn
	Speakers []stats.Speaker
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	doc, err := u.d.Decoder.Decode(in.Raw)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	doc = transcript.Relabel(doc, in.SpeakerNames)
	records := transcript.Collate(doc)
	speakers := stats.Summarize(records)
	merged := turns.Merge(records, turns.Options{NumberFinal: in.NumberFinal})
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := u.d.Report.WriteTurns(in.Out, merged); err != nil {
		return Result{}, err
	}
	return Result{Segments: len(records), Turns: merged, Speakers: speakers}, nil
}
