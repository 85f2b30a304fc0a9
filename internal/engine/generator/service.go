package generator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"qrgen/internal/engine/payload"
	"qrgen/internal/engine/qrcode"
	qrerrors "qrgen/internal/pkg/errors"
	"qrgen/internal/platform/audit"
)

type Request struct {
	Payload  payload.Payload
	Output   string
	Terminal bool
}

type Result struct {
	ID       string
	Mode     payload.Mode
	Output   string
	Format   qrcode.Format
	Version  int
	Payload  string
	Warnings []payload.Warning
	// Terminal holds the text rendering when it was requested.
	Terminal string
}

type Service struct {
	opts  qrcode.Options
	audit *audit.Logger
}

func NewService(opts qrcode.Options, auditLog *audit.Logger) *Service {
	return &Service{opts: opts, audit: auditLog}
}

// Generate formats the request payload, encodes it and writes the image to
// req.Output. Every failure happens before the file is opened except the
// write itself.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Payload == nil {
		return nil, qrerrors.Argument("no payload given")
	}
	if req.Output == "" {
		return nil, qrerrors.Argument("output path is empty")
	}

	content, err := req.Payload.Format()
	if err != nil {
		return nil, err
	}

	mode := req.Payload.Mode()
	logger := log.With().Str("mode", mode.String()).Str("output", req.Output).Logger()
	logger.Debug().Int("payload_bytes", len(content)).Msg("payload formatted")

	warnings := payload.Lint(req.Payload)
	for _, w := range warnings {
		logger.Warn().Str("field", w.Field).Msg(w.Message)
	}

	symbol, err := qrcode.WriteFile(req.Output, content, s.opts)
	if err != nil {
		return nil, qrerrors.EncodingIO(fmt.Sprintf("failed to write %s", req.Output), err)
	}

	result := &Result{
		Mode:     mode,
		Output:   req.Output,
		Format:   symbol.Format,
		Version:  symbol.Version,
		Payload:  content,
		Warnings: warnings,
	}

	if req.Terminal {
		// content was encoded above, so rendering cannot fail
		result.Terminal, _ = qrcode.Terminal(content, s.opts)
	}

	if s.audit != nil {
		rec := s.audit.Log(ctx, audit.Record{
			Mode:         mode.String(),
			Output:       req.Output,
			Format:       string(symbol.Format),
			Version:      symbol.Version,
			PayloadBytes: len(content),
			Warnings:     len(warnings),
		})
		result.ID = rec.ID
	}

	return result, nil
}
