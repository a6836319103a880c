package parsedresult

import (
	"strings"

	barscan "github.com/rastergrid/barscan"
)

// AddressBookParsedResult carries contact-card fields recognized from
// MECARD, vCard, BIZCARD, or AU MEMORY payloads.
type AddressBookParsedResult struct {
	Names              []string
	PronunciationNames []string
	PhoneNumbers       []string
	Emails             []string
	Note               string
	Addresses          []string
	Org                string
	BirthDay           string
	Title              string
	URLs               []string
	Geo                []float64
}

func (*AddressBookParsedResult) Type() Type { return TypeAddressBook }

func (r *AddressBookParsedResult) DisplayResult() string {
	var b strings.Builder
	writeJoined(&b, r.Names)
	writeJoined(&b, r.PronunciationNames)
	writeField(&b, r.Title)
	writeField(&b, r.Org)
	writeJoined(&b, r.Addresses)
	writeJoined(&b, r.PhoneNumbers)
	writeJoined(&b, r.Emails)
	writeField(&b, r.Note)
	writeJoined(&b, r.URLs)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeField(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteString(s)
	b.WriteByte('\n')
}

func writeJoined(b *strings.Builder, ss []string) {
	for _, s := range ss {
		writeField(b, s)
	}
}

// parseMECARD recognizes "MECARD:N:Sean Owen;TEL:...;;" style payloads.
func parseMECARD(result *barscan.Result) ParsedResult {
	const prefix = "MECARD:"
	if !strings.HasPrefix(result.Text, prefix) {
		return nil
	}
	rawText := result.Text

	rawName := matchPrefixedField("N:", rawText, ';', true)
	if rawName == nil {
		return nil
	}
	names := parseNames(rawName)

	r := &AddressBookParsedResult{
		Names:              names,
		PronunciationNames: matchPrefixedField("SOUND:", rawText, ';', true),
		PhoneNumbers:       matchPrefixedField("TEL:", rawText, ';', true),
		Emails:             matchPrefixedField("EMAIL:", rawText, ';', true),
		Note:               matchSinglePrefixedField("NOTE:", rawText, ';', false),
		Addresses:          matchPrefixedField("ADR:", rawText, ';', true),
		Org:                matchSinglePrefixedField("ORG:", rawText, ';', true),
		BirthDay:           matchSinglePrefixedField("BDAY:", rawText, ';', true),
		Title:              matchSinglePrefixedField("TITLE:", rawText, ';', true),
		URLs:               matchPrefixedField("URL:", rawText, ';', true),
	}
	return r
}

// parseNames splits MECARD "Last,First" style name fields into single names.
func parseNames(rawNames []string) []string {
	names := make([]string, 0, len(rawNames))
	for _, n := range rawNames {
		names = append(names, strings.ReplaceAll(n, ",", " "))
	}
	return names
}

// parseBizcard recognizes "BIZCARD:N:...;X:...;C:...;A:...;" payloads.
func parseBizcard(result *barscan.Result) ParsedResult {
	const prefix = "BIZCARD:"
	if !strings.HasPrefix(result.Text, prefix) {
		return nil
	}
	rawText := result.Text

	first := matchSinglePrefixedField("N:", rawText, ';', true)
	last := matchSinglePrefixedField("X:", rawText, ';', true)
	full := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))

	var names []string
	if full != "" {
		names = []string{full}
	}

	return &AddressBookParsedResult{
		Names:        names,
		Title:        matchSinglePrefixedField("T:", rawText, ';', true),
		Org:          matchSinglePrefixedField("C:", rawText, ';', true),
		Addresses:    matchPrefixedField("A:", rawText, ';', true),
		PhoneNumbers: appendNonEmpty(matchSinglePrefixedField("B:", rawText, ';', true), matchSinglePrefixedField("M:", rawText, ';', true)),
		Emails:       matchPrefixedField("E:", rawText, ';', true),
		URLs:         matchPrefixedField("URL:", rawText, ';', true),
	}
}

func appendNonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseVCard recognizes a minimal "BEGIN:VCARD" / "END:VCARD" payload. Each
// property is one line; a ";"-separated parameter list may precede the
// value's colon (e.g. "TEL;CELL:..."), which is ignored beyond the bare
// property name.
func parseVCard(result *barscan.Result) ParsedResult {
	rawText := result.Text
	if !strings.HasPrefix(strings.ToUpper(rawText), "BEGIN:VCARD") {
		return nil
	}

	r := &AddressBookParsedResult{}
	lines := strings.Split(rawText, "\n")
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			continue
		}
		propFull := line[:colon]
		value := line[colon+1:]
		prop := propFull
		if semi := strings.Index(propFull, ";"); semi >= 0 {
			prop = propFull[:semi]
		}
		prop = strings.ToUpper(strings.TrimSpace(prop))

		switch prop {
		case "N":
			parts := strings.Split(value, ";")
			var nameParts []string
			for _, p := range parts {
				if p != "" {
					nameParts = append(nameParts, p)
				}
			}
			if len(nameParts) > 0 {
				r.Names = append(r.Names, strings.Join(reverseName(nameParts), " "))
			}
		case "FN":
			r.Names = append([]string{value}, r.Names...)
		case "ORG":
			r.Org = strings.ReplaceAll(value, ";", " ")
		case "TITLE":
			r.Title = value
		case "TEL":
			r.PhoneNumbers = append(r.PhoneNumbers, value)
		case "EMAIL":
			r.Emails = append(r.Emails, value)
		case "ADR":
			addr := strings.TrimSpace(strings.Join(strings.Split(value, ";"), " "))
			if addr != "" {
				r.Addresses = append(r.Addresses, addr)
			}
		case "NOTE":
			r.Note = value
		case "BDAY":
			r.BirthDay = value
		case "URL":
			r.URLs = append(r.URLs, value)
		}
	}
	if len(r.Names) == 0 && r.Org == "" && len(r.PhoneNumbers) == 0 && len(r.Emails) == 0 {
		return nil
	}
	return r
}

// reverseName turns vCard's "Last;First;Middle" component order into
// "First Middle Last" for display.
func reverseName(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts))
	out = append(out, parts[1:]...)
	out = append(out, parts[0])
	return out
}

// parseAddressBookAU recognizes the Japanese AU phone "MEMORY:" contact
// format: a MEMORY: line holding the name, followed by TEL: lines.
func parseAddressBookAU(result *barscan.Result) ParsedResult {
	rawText := result.Text
	if !strings.Contains(rawText, "MEMORY:") {
		return nil
	}
	if strings.HasPrefix(rawText, "MECARD:") {
		return nil
	}

	name := matchSinglePrefixedField("MEMORY:", rawText, '\n', true)
	phones := matchPrefixedField("TEL:", rawText, '\n', true)
	if name == "" && len(phones) == 0 {
		return nil
	}

	r := &AddressBookParsedResult{PhoneNumbers: phones}
	if name != "" {
		r.Names = []string{name}
	}
	return r
}
