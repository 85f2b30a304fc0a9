package payload

import (
	"fmt"
	"strings"
	"time"

	qrerrors "qrgen/internal/pkg/errors"
)

const (
	// InputDateLayout is the accepted start/end format: local wall time,
	// minute precision, no zone.
	InputDateLayout = "2006-01-02T15:04"
	// ICalDateLayout is the iCalendar basic format for floating local time.
	ICalDateLayout = "20060102T150405"
)

type Event struct {
	Title       string
	Start       string
	End         string
	Location    string
	Description string
}

func (Event) Mode() Mode { return ModeEvent }

func (p Event) Format() (string, error) {
	start, err := FormatICalDate("start", p.Start)
	if err != nil {
		return "", err
	}
	end, err := FormatICalDate("end", p.End)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("BEGIN:VEVENT\n")
	b.WriteString("SUMMARY:" + p.Title + "\n")
	b.WriteString("DTSTART:" + start + "\n")
	b.WriteString("DTEND:" + end + "\n")
	b.WriteString("LOCATION:" + p.Location + "\n")
	b.WriteString("DESCRIPTION:" + p.Description + "\n")
	b.WriteString("END:VEVENT\n")
	// VEVENT ends with its own newline, leaving an empty line before
	// the closing line.
	b.WriteString("\n")
	b.WriteString("END:VCALENDAR")
	return b.String(), nil
}

// FormatICalDate converts a YYYY-MM-DDTHH:MM value into YYYYMMDDTHHMMSS.
// No timezone conversion is applied.
func FormatICalDate(field, value string) (string, error) {
	t, err := time.Parse(InputDateLayout, value)
	if err != nil {
		return "", qrerrors.DateFormat(
			fmt.Sprintf("invalid %s date %q: expected YYYY-MM-DDTHH:MM", field, value), err)
	}
	return t.Format(ICalDateLayout), nil
}
