// Package payload formats typed input fields into the text payloads that
// phones and scanners recognize: URIs, WIFI: configuration strings, vCard
// 3.0 records, SMSTO: links and iCalendar events.
//
// Formatting is pure and deterministic. Field values are embedded as given;
// no escaping is applied to characters that are reserved in the target
// grammar. Use Lint to surface such values.
package payload

type Mode string

const (
	ModeURL   Mode = "url"
	ModeTel   Mode = "tel"
	ModeWiFi  Mode = "wifi"
	ModeVCard Mode = "vcard"
	ModeSMS   Mode = "sms"
	ModeEvent Mode = "event"
	ModeText  Mode = "text"
)

// Modes lists every mode in the order they are presented to users.
var Modes = []Mode{ModeURL, ModeTel, ModeWiFi, ModeVCard, ModeSMS, ModeEvent, ModeText}

func (m Mode) String() string {
	return string(m)
}

type Payload interface {
	Mode() Mode
	Format() (string, error)
}

type URL struct {
	URL string
}

func (URL) Mode() Mode { return ModeURL }

func (p URL) Format() (string, error) {
	return p.URL, nil
}

type Tel struct {
	Number string
}

func (Tel) Mode() Mode { return ModeTel }

func (p Tel) Format() (string, error) {
	return "tel:" + p.Number, nil
}

type Text struct {
	Text string
}

func (Text) Mode() Mode { return ModeText }

func (p Text) Format() (string, error) {
	return p.Text, nil
}
