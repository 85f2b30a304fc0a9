package payload

import (
	"fmt"
	"strings"

	"qrgen/internal/pkg/validator"
)

type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Lint reports field values that are likely to produce a payload scanners
// misread. It never changes or rejects the payload.
func Lint(p Payload) []Warning {
	var warnings []Warning

	reserved := func(field, value string) {
		if chars := validator.ReservedChars(value); len(chars) > 0 {
			warnings = append(warnings, Warning{
				Field:   field,
				Message: fmt.Sprintf("contains unescaped reserved characters %s", strings.Join(chars, " ")),
			})
		}
	}

	switch v := p.(type) {
	case URL:
		if err := validator.IsURL(v.URL); err != nil {
			warnings = append(warnings, Warning{Field: "url", Message: err.Error()})
		}
	case *URL:
		return Lint(*v)
	case WiFi:
		reserved("ssid", v.SSID)
		reserved("password", v.Password)
		switch strings.ToUpper(v.Security) {
		case "WPA", "WEP", "WPA2", "WPA3", "SAE", "NOPASS", "":
		default:
			warnings = append(warnings, Warning{Field: "security", Message: fmt.Sprintf("unrecognized security type %q", v.Security)})
		}
	case *WiFi:
		return Lint(*v)
	case VCard:
		reserved("fn", v.FullName)
		reserved("org", v.Org)
		reserved("title", v.Title)
		if err := validator.IsEmail(v.Email); err != nil {
			warnings = append(warnings, Warning{Field: "email", Message: err.Error()})
		}
	case *VCard:
		return Lint(*v)
	}

	return warnings
}
