package cli

import (
	"fmt"
	"strings"
)

func shortUsage() string {
	parts := make([]string, 0, len(modeSpecs))
	for _, m := range modeSpecs {
		parts = append(parts, m.flag()+" "+strings.Join(m.metavars, " "))
	}
	return fmt.Sprintf("usage: %s [-h] (%s) [--output OUTPUT]", programName, strings.Join(parts, " | "))
}

// Usage returns the full help text.
func Usage() string {
	var b strings.Builder
	b.WriteString(shortUsage())
	b.WriteString("\n\nGenerate QR codes for various data types.\n\n")
	b.WriteString("modes (exactly one is required):\n")

	for _, m := range modeSpecs {
		head := m.flag() + " " + strings.Join(m.metavars, " ")
		fmt.Fprintf(&b, "  %-46s %s\n", head, m.help)
	}

	b.WriteString("\noptions:\n")
	inv := &Invocation{}
	b.WriteString(newFlagSet(inv).FlagUsages())
	return b.String()
}
