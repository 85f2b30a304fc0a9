package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"qrgen/internal/engine/payload"
	qrerrors "qrgen/internal/pkg/errors"
	"qrgen/internal/platform/config"
)

const programName = "qrgen"

type modeSpec struct {
	mode     payload.Mode
	min, max int
	metavars []string
	help     string
	build    func(values []string) payload.Payload
}

func (m modeSpec) flag() string {
	return "--" + m.mode.String()
}

func (m modeSpec) arity() string {
	switch {
	case m.min == m.max && m.min == 1:
		return "1 argument"
	case m.min == m.max:
		return fmt.Sprintf("%d arguments", m.min)
	default:
		return fmt.Sprintf("%d to %d arguments", m.min, m.max)
	}
}

var modeSpecs = []modeSpec{
	{
		mode: payload.ModeURL, min: 1, max: 1,
		metavars: []string{"URL"},
		help:     "Generate QR for a URL",
		build:    func(v []string) payload.Payload { return payload.URL{URL: v[0]} },
	},
	{
		mode: payload.ModeTel, min: 1, max: 1,
		metavars: []string{"NUMBER"},
		help:     "Generate QR for a phone number (e.g., +1234567890)",
		build:    func(v []string) payload.Payload { return payload.Tel{Number: v[0]} },
	},
	{
		mode: payload.ModeWiFi, min: 3, max: 3,
		metavars: []string{"SSID", "SECURITY", "PASSWORD"},
		help:     "Generate QR for WiFi access",
		build: func(v []string) payload.Payload {
			return payload.WiFi{SSID: v[0], Security: v[1], Password: v[2]}
		},
	},
	{
		mode: payload.ModeVCard, min: 5, max: 5,
		metavars: []string{"FN", "ORG", "TEL", "EMAIL", "TITLE"},
		help:     "Generate QR for a vCard contact",
		build: func(v []string) payload.Payload {
			return payload.VCard{FullName: v[0], Org: v[1], Tel: v[2], Email: v[3], Title: v[4]}
		},
	},
	{
		mode: payload.ModeSMS, min: 1, max: 2,
		metavars: []string{"NUMBER", "[MESSAGE]"},
		help:     "Generate QR for SMS (message is optional)",
		build: func(v []string) payload.Payload {
			sms := payload.SMS{Number: v[0]}
			if len(v) > 1 {
				sms.Message = v[1]
			}
			return sms
		},
	},
	{
		mode: payload.ModeEvent, min: 5, max: 5,
		metavars: []string{"TITLE", "START", "END", "LOCATION", "DESC"},
		help:     "Generate QR for calendar event (start/end in YYYY-MM-DDTHH:MM format)",
		build: func(v []string) payload.Payload {
			return payload.Event{Title: v[0], Start: v[1], End: v[2], Location: v[3], Description: v[4]}
		},
	},
	{
		mode: payload.ModeText, min: 1, max: 1,
		metavars: []string{"TEXT"},
		help:     "Generate QR for plain text",
		build:    func(v []string) payload.Payload { return payload.Text{Text: v[0]} },
	},
}

func lookupMode(name string) (modeSpec, bool) {
	for _, m := range modeSpecs {
		if m.mode.String() == name {
			return m, true
		}
	}
	return modeSpec{}, false
}

// Invocation is a validated command line.
type Invocation struct {
	Payload    payload.Payload
	ConfigPath string
	Terminal   bool
	Help       bool

	output     string
	logLevel   string
	logFormat  string
	size       int
	moduleSize int
	noBorder   bool
	changed    map[string]bool
}

// Apply overrides cfg with the options given on the command line.
func (inv *Invocation) Apply(cfg *config.Config) {
	if inv.changed["output"] {
		cfg.Output = inv.output
	}
	if inv.changed["log-level"] {
		cfg.Logging.Level = inv.logLevel
	}
	if inv.changed["log-format"] {
		cfg.Logging.Format = inv.logFormat
	}
	if inv.changed["size"] {
		cfg.Image.Size = inv.size
	}
	if inv.changed["module-size"] {
		cfg.Image.ModuleSize = inv.moduleSize
	}
	if inv.changed["no-border"] {
		cfg.Image.DisableBorder = inv.noBorder
	}
}

func newFlagSet(inv *Invocation) *pflag.FlagSet {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&inv.output, "output", "o", config.DefaultOutput, "Output file name (.png, .jpg, .gif, .bmp)")
	fs.StringVar(&inv.ConfigPath, "config", "", "Path to an optional config file")
	fs.BoolVar(&inv.Terminal, "terminal", false, "Also print the QR code to stdout")
	fs.IntVar(&inv.size, "size", 0, "Image width and height in pixels (0 sizes by module)")
	fs.IntVar(&inv.moduleSize, "module-size", config.DefaultModuleSize, "Pixels per module when --size is 0")
	fs.BoolVar(&inv.noBorder, "no-border", false, "Omit the quiet zone around the symbol")
	fs.StringVar(&inv.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.StringVar(&inv.logFormat, "log-format", "text", "Log format: text or json")
	fs.BoolVarP(&inv.Help, "help", "h", false, "Show this help message and exit")
	return fs
}

// looksLikeOption reports whether tok ends a mode's value list.
func looksLikeOption(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return false
	}
	return true
}

// takesValue reports whether the ambient option tok consumes the next token.
func takesValue(fs *pflag.FlagSet, tok string) bool {
	if strings.Contains(tok, "=") {
		return false
	}
	var f *pflag.Flag
	if strings.HasPrefix(tok, "--") {
		f = fs.Lookup(tok[2:])
	} else if len(tok) == 2 {
		f = fs.ShorthandLookup(tok[1:])
	}
	return f != nil && f.Value.Type() != "bool"
}

type modeArg struct {
	spec   modeSpec
	values []string
}

// Parse validates args (without the program name). Mode flags take their
// values positionally, the remaining options are parsed with pflag.
func Parse(args []string) (*Invocation, error) {
	inv := &Invocation{}
	fs := newFlagSet(inv)

	var (
		modes []modeArg
		rest  []string
	)

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if tok == "--" {
			rest = append(rest, args[i:]...)
			break
		}

		if !strings.HasPrefix(tok, "--") {
			rest = append(rest, tok)
			if looksLikeOption(tok) && takesValue(fs, tok) && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
			continue
		}

		name, inline, hasInline := strings.Cut(tok[2:], "=")
		spec, ok := lookupMode(name)
		if !ok {
			rest = append(rest, tok)
			if takesValue(fs, tok) && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
			continue
		}

		var values []string
		if hasInline {
			values = append(values, inline)
		}
		for len(values) < spec.max && i+1 < len(args) && !looksLikeOption(args[i+1]) {
			i++
			values = append(values, args[i])
		}
		modes = append(modes, modeArg{spec: spec, values: values})
	}

	if err := fs.Parse(rest); err != nil {
		return nil, qrerrors.Argument("%v", err)
	}
	if inv.Help {
		return inv, nil
	}
	if fs.NArg() > 0 {
		return nil, qrerrors.Argument("unrecognized arguments: %s", strings.Join(fs.Args(), " "))
	}

	inv.changed = make(map[string]bool)
	fs.Visit(func(f *pflag.Flag) {
		inv.changed[f.Name] = true
	})

	switch len(modes) {
	case 0:
		return nil, qrerrors.Argument("one of the arguments %s is required", modeList())
	case 1:
	default:
		return nil, qrerrors.Argument("argument %s: not allowed with argument %s",
			modes[1].spec.flag(), modes[0].spec.flag())
	}

	m := modes[0]
	if len(m.values) < m.spec.min {
		return nil, qrerrors.Argument("argument %s: expected %s (%s)",
			m.spec.flag(), m.spec.arity(), strings.Join(m.spec.metavars, " "))
	}

	inv.Payload = m.spec.build(m.values)
	return inv, nil
}

func modeList() string {
	flags := make([]string, 0, len(modeSpecs))
	for _, m := range modeSpecs {
		flags = append(flags, m.flag())
	}
	return strings.Join(flags, " ")
}
