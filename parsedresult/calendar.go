package parsedresult

import (
	"strings"

	barscan "github.com/rastergrid/barscan"
)

// CalendarParsedResult carries an iCalendar VEVENT's summary, location,
// and start/end timestamps (in the event's original DTSTART/DTEND form).
type CalendarParsedResult struct {
	Summary     string
	Location    string
	Start       string
	End         string
	Organizer   string
	Attendees   []string
	Description string
}

func (*CalendarParsedResult) Type() Type { return TypeCalendar }

func (r *CalendarParsedResult) DisplayResult() string {
	var b strings.Builder
	writeField(&b, r.Summary)
	writeField(&b, r.Start)
	writeField(&b, r.End)
	writeField(&b, r.Location)
	writeField(&b, r.Organizer)
	writeJoined(&b, r.Attendees)
	writeField(&b, r.Description)
	return strings.TrimSuffix(b.String(), "\n")
}

// parseVEvent recognizes a "BEGIN:VEVENT" ... "END:VEVENT" iCalendar block.
// Only the first VEVENT component in the text is parsed.
func parseVEvent(result *barscan.Result) ParsedResult {
	rawText := result.Text
	start := strings.Index(rawText, "BEGIN:VEVENT")
	if start < 0 {
		return nil
	}
	body := rawText[start:]
	if end := strings.Index(body, "END:VEVENT"); end >= 0 {
		body = body[:end]
	}

	r := &CalendarParsedResult{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
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
		switch strings.ToUpper(strings.TrimSpace(prop)) {
		case "SUMMARY":
			r.Summary = unescapeICal(value)
		case "DTSTART":
			r.Start = value
		case "DTEND":
			r.End = value
		case "LOCATION":
			r.Location = unescapeICal(value)
		case "ORGANIZER":
			r.Organizer = value
		case "ATTENDEE":
			r.Attendees = append(r.Attendees, value)
		case "DESCRIPTION":
			r.Description = unescapeICal(value)
		}
	}
	if r.Summary == "" && r.Start == "" {
		return nil
	}
	return r
}

// unescapeICal reverses iCalendar's TEXT value escaping (RFC 5545 §3.3.11):
// "\\n" becomes a newline, "\\," and "\\;" become literal punctuation.
func unescapeICal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n', 'N':
				b.WriteByte('\n')
				i++
				continue
			case ',', ';', '\\':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
