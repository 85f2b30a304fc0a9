package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const ActionGenerate = "qr.generate"

type Record struct {
	ID           string `json:"id"`
	Action       string `json:"action"`
	Mode         string `json:"mode"`
	Output       string `json:"output"`
	Format       string `json:"format"`
	Version      int    `json:"version"`
	PayloadBytes int    `json:"payload_bytes"`
	Warnings     int    `json:"warnings"`
	CreatedAt    int64  `json:"created_at"`
}

type Logger struct {
	log zerolog.Logger
	now func() time.Time
}

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log, now: time.Now}
}

func NewID() string {
	return "gen_" + uuid.New().String()
}

// Log fills in the id, action and timestamp when unset and emits the record
// as a single info event. It returns the completed record.
func (l *Logger) Log(ctx context.Context, rec Record) Record {
	if rec.ID == "" {
		rec.ID = NewID()
	}
	if rec.Action == "" {
		rec.Action = ActionGenerate
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = l.now().Unix()
	}

	l.log.Info().
		Ctx(ctx).
		Str("id", rec.ID).
		Str("action", rec.Action).
		Str("mode", rec.Mode).
		Str("output", rec.Output).
		Str("format", rec.Format).
		Int("version", rec.Version).
		Int("payload_bytes", rec.PayloadBytes).
		Int("warnings", rec.Warnings).
		Int64("created_at", rec.CreatedAt).
		Msg("qr code generated")

	return rec
}
