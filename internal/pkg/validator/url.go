package validator

import (
	"errors"
	"net/url"
	"strings"
)

const reservedChars = ";:,\\\""

func IsURL(raw string) error {
	if raw == "" {
		return errors.New("url is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("invalid url format")
	}

	if u.Scheme == "" {
		return errors.New("url has no scheme")
	}

	// Scanners only open web links directly
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return errors.New("url has no host")
	}

	return nil
}

// ReservedChars returns the characters of s that carry structure in the
// WIFI: and vCard payload grammars, in order of first appearance.
func ReservedChars(s string) []string {
	var found []string
	for _, c := range reservedChars {
		if strings.ContainsRune(s, c) {
			found = append(found, string(c))
		}
	}
	return found
}
