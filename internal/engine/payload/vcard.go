package payload

import "strings"

type VCard struct {
	FullName string
	Org      string
	Tel      string
	Email    string
	Title    string
}

func (VCard) Mode() Mode { return ModeVCard }

func (p VCard) Format() (string, error) {
	given, surname := SplitName(p.FullName)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + surname + ";" + given + ";;;",
		"FN:" + p.FullName,
		"ORG:" + p.Org,
		"TITLE:" + p.Title,
		"TEL;TYPE=WORK,VOICE:" + p.Tel,
		"EMAIL;TYPE=INTERNET:" + p.Email,
		"END:VCARD",
	}
	return strings.Join(lines, "\n"), nil
}

// SplitName splits a full name into given name and surname. The last
// whitespace-separated token is the surname when there is more than one.
// This is a heuristic: particles ("van", "de") and suffixes are not handled.
func SplitName(fullName string) (given, surname string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return fullName, ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}
