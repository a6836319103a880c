package parsedresult

import (
	"strings"

	barscan "github.com/rastergrid/barscan"
)

// TelParsedResult carries a "tel:" URI's phone number.
type TelParsedResult struct {
	Number string
}

func (*TelParsedResult) Type() Type { return TypeTel }

func (r *TelParsedResult) DisplayResult() string { return r.Number }

// parseTel recognizes "tel:+14155551212" style URIs.
func parseTel(result *barscan.Result) ParsedResult {
	rawText := result.Text
	if !strings.HasPrefix(strings.ToLower(rawText), "tel:") {
		return nil
	}
	number := rawText[len("tel:"):]
	if number == "" {
		return nil
	}
	return &TelParsedResult{Number: number}
}

// EmailAddressParsedResult carries one or more recipient addresses, plus
// an optional subject and body, from a "mailto:" URI or MATMSG payload.
type EmailAddressParsedResult struct {
	Addresses []string
	Subject   string
	Body      string
}

func (*EmailAddressParsedResult) Type() Type { return TypeEmailAddress }

func (r *EmailAddressParsedResult) DisplayResult() string {
	var b strings.Builder
	writeJoined(&b, r.Addresses)
	writeField(&b, r.Subject)
	writeField(&b, r.Body)
	return strings.TrimSuffix(b.String(), "\n")
}

// parseEmail recognizes "mailto:" URIs and "MATMSG:" payloads.
func parseEmail(result *barscan.Result) ParsedResult {
	rawText := result.Text

	if strings.HasPrefix(rawText, "MATMSG:") {
		to := matchPrefixedField("TO:", rawText, ';', true)
		if len(to) == 0 {
			return nil
		}
		return &EmailAddressParsedResult{
			Addresses: to,
			Subject:   matchSinglePrefixedField("SUB:", rawText, ';', false),
			Body:      matchSinglePrefixedField("BODY:", rawText, ';', false),
		}
	}

	if strings.HasPrefix(strings.ToLower(rawText), "mailto:") {
		body := rawText[len("mailto:"):]
		addr := body
		query := ""
		if q := strings.Index(body, "?"); q >= 0 {
			addr = body[:q]
			query = body[q+1:]
		}
		if addr == "" {
			return nil
		}
		r := &EmailAddressParsedResult{Addresses: strings.Split(addr, ",")}
		for _, param := range strings.Split(query, "&") {
			kv := strings.SplitN(param, "=", 2)
			if len(kv) != 2 {
				continue
			}
			switch strings.ToLower(kv[0]) {
			case "subject":
				r.Subject = kv[1]
			case "body":
				r.Body = kv[1]
			}
		}
		return r
	}

	return nil
}

// SMSParsedResult carries a destination number and optional body from an
// "sms:"/"smsto:" URI.
type SMSParsedResult struct {
	Number string
	Body   string
}

func (*SMSParsedResult) Type() Type { return TypeSMS }

func (r *SMSParsedResult) DisplayResult() string {
	var b strings.Builder
	writeField(&b, r.Number)
	writeField(&b, r.Body)
	return strings.TrimSuffix(b.String(), "\n")
}

// parseSMS recognizes "sms:", "smsto:", "SMSTO:" prefixed payloads.
func parseSMS(result *barscan.Result) ParsedResult {
	rawText := result.Text
	lower := strings.ToLower(rawText)

	var prefixLen int
	switch {
	case strings.HasPrefix(lower, "sms:"):
		prefixLen = len("sms:")
	case strings.HasPrefix(lower, "smsto:"):
		prefixLen = len("smsto:")
	default:
		return nil
	}

	body := rawText[prefixLen:]
	number := body
	smsBody := ""
	if colon := strings.Index(body, ":"); colon >= 0 {
		number = body[:colon]
		smsBody = body[colon+1:]
	} else if q := strings.Index(body, "?"); q >= 0 {
		number = body[:q]
	}
	if number == "" {
		return nil
	}
	return &SMSParsedResult{Number: number, Body: smsBody}
}
