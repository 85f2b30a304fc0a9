package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qrerrors "qrgen/internal/pkg/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    string
	}{
		{
			name:    "url verbatim",
			payload: URL{URL: "https://example.com/a?b=c"},
			want:    "https://example.com/a?b=c",
		},
		{
			name:    "tel",
			payload: Tel{Number: "+1234567890"},
			want:    "tel:+1234567890",
		},
		{
			name:    "text verbatim",
			payload: Text{Text: "hello; world:\nline two"},
			want:    "hello; world:\nline two",
		},
		{
			name:    "wifi without escaping",
			payload: WiFi{SSID: "MyNet", Security: "WPA", Password: "pass;word"},
			want:    "WIFI:T:WPA;S:MyNet;P:pass;word;;",
		},
		{
			name:    "sms with message",
			payload: SMS{Number: "+1555", Message: "On my way"},
			want:    "SMSTO:+1555:On my way",
		},
		{
			name:    "sms without message",
			payload: SMS{Number: "+1555"},
			want:    "SMSTO:+1555:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.payload.Format()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModes(t *testing.T) {
	payloads := map[Mode]Payload{
		ModeURL:   URL{},
		ModeTel:   Tel{},
		ModeWiFi:  WiFi{},
		ModeVCard: VCard{},
		ModeSMS:   SMS{},
		ModeEvent: Event{},
		ModeText:  Text{},
	}

	require.Len(t, Modes, len(payloads))
	for _, m := range Modes {
		p, ok := payloads[m]
		require.True(t, ok, "mode %s has no payload type", m)
		assert.Equal(t, m, p.Mode())
	}
}

func TestVCard_Format(t *testing.T) {
	card := VCard{
		FullName: "Ada Lovelace",
		Org:      "Analytical Engines",
		Tel:      "+1555",
		Email:    "ada@x.com",
		Title:    "Engineer",
	}

	got, err := card.Format()
	require.NoError(t, err)

	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Lovelace;Ada;;;\n" +
		"FN:Ada Lovelace\n" +
		"ORG:Analytical Engines\n" +
		"TITLE:Engineer\n" +
		"TEL;TYPE=WORK,VOICE:+1555\n" +
		"EMAIL;TYPE=INTERNET:ada@x.com\n" +
		"END:VCARD"
	assert.Equal(t, want, got)
}

func TestVCard_SingleTokenName(t *testing.T) {
	got, err := VCard{FullName: "Plato", Org: "Academy", Tel: "1", Email: "p@a.gr", Title: "Philosopher"}.Format()
	require.NoError(t, err)

	assert.Contains(t, got, "\nN:;Plato;;;\n")
	assert.Contains(t, got, "\nFN:Plato\n")
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in          string
		wantGiven   string
		wantSurname string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Plato", "Plato", ""},
		{"  Plato  ", "Plato", ""},
		{"Augusta Ada King", "Augusta Ada", "King"},
		{"Ada   Byron\tLovelace", "Ada Byron", "Lovelace"},
		{"", "", ""},
		{"   ", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			given, surname := SplitName(tt.in)
			assert.Equal(t, tt.wantGiven, given)
			assert.Equal(t, tt.wantSurname, surname)
		})
	}
}

func TestEvent_Format(t *testing.T) {
	ev := Event{
		Title:       "Standup",
		Start:       "2024-01-02T09:00",
		End:         "2024-01-02T09:30",
		Location:    "Room1",
		Description: "Daily",
	}

	got, err := ev.Format()
	require.NoError(t, err)

	want := "BEGIN:VCALENDAR\n" +
		"VERSION:2.0\n" +
		"BEGIN:VEVENT\n" +
		"SUMMARY:Standup\n" +
		"DTSTART:20240102T090000\n" +
		"DTEND:20240102T093000\n" +
		"LOCATION:Room1\n" +
		"DESCRIPTION:Daily\n" +
		"END:VEVENT\n" +
		"\n" +
		"END:VCALENDAR"
	assert.Equal(t, want, got)
}

func TestEvent_InvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		field string
	}{
		{name: "space separator", start: "2024-01-02 09:00", end: "2024-01-02T09:30", field: "start"},
		{name: "seconds present", start: "2024-01-02T09:00:00", end: "2024-01-02T09:30", field: "start"},
		{name: "unpadded month", start: "2024-1-02T09:00", end: "2024-01-02T09:30", field: "start"},
		{name: "impossible day", start: "2024-01-02T09:00", end: "2024-02-30T09:30", field: "end"},
		{name: "timezone suffix", start: "2024-01-02T09:00", end: "2024-01-02T09:30Z", field: "end"},
		{name: "empty", start: "", end: "2024-01-02T09:30", field: "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Event{Title: "x", Start: tt.start, End: tt.end}.Format()
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, qrerrors.IsKind(err, qrerrors.KindDateFormat))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestFormatICalDate(t *testing.T) {
	got, err := FormatICalDate("start", "2024-12-31T23:59")
	require.NoError(t, err)
	assert.Equal(t, "20241231T235900", got)
}

func TestFormat_Idempotent(t *testing.T) {
	payloads := []Payload{
		VCard{FullName: "Ada Lovelace", Org: "AE", Tel: "+1555", Email: "ada@x.com", Title: "Engineer"},
		Event{Title: "Standup", Start: "2024-01-02T09:00", End: "2024-01-02T09:30", Location: "Room1", Description: "Daily"},
		WiFi{SSID: "MyNet", Security: "WPA", Password: "secret"},
	}

	for _, p := range payloads {
		first, err := p.Format()
		require.NoError(t, err)
		second, err := p.Format()
		require.NoError(t, err)
		assert.Equal(t, first, second, "mode %s", p.Mode())
	}
}
