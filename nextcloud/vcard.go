package nextcloud

import (
	"strings"
)

// parseVCard decodes a single VCard 3.0/4.0 blob into a flat Contact.
//
// This is intentionally not a full VCard grammar: no quoted-printable,
// no base64, no TYPE parameter handling. It recognizes FN, EMAIL, TEL,
// ORG, NOTE and ADR, ignores everything else, and lets the last
// occurrence of a property win. Good enough for read-mostly contact
// browsing.
func parseVCard(text string) Contact {
	var contact Contact

	for _, line := range unfoldVCardLines(text) {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		// Strip parameters: NAME;TYPE=WORK -> NAME
		if i := strings.Index(name, ";"); i >= 0 {
			name = name[:i]
		}
		value = strings.TrimSpace(value)

		switch strings.ToUpper(name) {
		case "FN":
			contact.FN = value
		case "EMAIL":
			contact.Email = value
		case "TEL":
			contact.Tel = value
		case "ORG":
			contact.Org = value
		case "NOTE":
			contact.Note = value
		case "ADR":
			contact.Adr = joinAdrComponents(value)
		}
	}

	return contact
}

// unfoldVCardLines merges folded continuation lines: a line starting
// with a single space or tab continues the previous line, minus that
// one leading character (RFC 6350 section 3.2).
func unfoldVCardLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var lines []string
	for _, line := range raw {
		if line == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// joinAdrComponents flattens the semicolon-delimited structured ADR
// value, joining the non-empty components with ", ".
func joinAdrComponents(value string) string {
	parts := strings.Split(value, ";")
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
