package ports

import (
	"io"

	"github.com/forPelevin/diarcsv/internal/types"
)

type TranscriptDecoder interface {
	Decode(raw []byte) (types.Document, error)
}

type ReportWriter interface {
	WriteTurns(w io.Writer, turns []types.Turn) error
}
