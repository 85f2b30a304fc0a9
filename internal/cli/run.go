package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"qrgen/internal/engine/generator"
	"qrgen/internal/engine/qrcode"
	qrerrors "qrgen/internal/pkg/errors"
	"qrgen/internal/pkg/logger"
	"qrgen/internal/platform/audit"
	"qrgen/internal/platform/config"
)

// Run executes one invocation and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv, err := Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, shortUsage())
		fmt.Fprintf(stderr, "%s: error: %v\n", programName, err)
		return qrerrors.ExitCode(err)
	}

	if inv.Help {
		fmt.Fprint(stdout, Usage())
		return qrerrors.ExitOK
	}

	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		err = qrerrors.Config("failed to load config", err)
		fmt.Fprintf(stderr, "%s: error: %v\n", programName, err)
		return qrerrors.ExitCode(err)
	}
	inv.Apply(cfg)

	logger.InitWithWriter(cfg.Logging, stderr)

	svc := generator.NewService(qrcode.Options{
		Size:          cfg.Image.Size,
		ModuleSize:    cfg.Image.ModuleSize,
		DisableBorder: cfg.Image.DisableBorder,
	}, audit.NewLogger(log.Logger))

	res, err := svc.Generate(ctx, generator.Request{
		Payload:  inv.Payload,
		Output:   cfg.Output,
		Terminal: inv.Terminal,
	})
	if err != nil {
		log.Debug().Err(err).Str("code", qrerrors.CodeOf(err)).Msg("generation failed")
		fmt.Fprintf(stderr, "%s: error: %v\n", programName, err)
		return qrerrors.ExitCode(err)
	}

	if res.Terminal != "" {
		fmt.Fprint(stdout, res.Terminal)
	}
	fmt.Fprintf(stdout, "[+] QR code saved as %s\n", res.Output)
	return qrerrors.ExitOK
}
