package parsedresult

import (
	"strings"

	barscan "github.com/rastergrid/barscan"
)

// URIParsedResult carries a recognized URL and, for DoCoMo bookmark
// payloads, its suggested title.
type URIParsedResult struct {
	URI   string
	Title string
}

func (*URIParsedResult) Type() Type { return TypeURI }

func (r *URIParsedResult) DisplayResult() string {
	var b strings.Builder
	writeField(&b, r.Title)
	writeField(&b, r.URI)
	return strings.TrimSuffix(b.String(), "\n")
}

// parseBookmark recognizes "MEBKM:TITLE:...;URL:...;" DoCoMo bookmark
// payloads.
func parseBookmark(result *barscan.Result) ParsedResult {
	const prefix = "MEBKM:"
	rawText := result.Text
	if !strings.HasPrefix(rawText, prefix) {
		return nil
	}
	uri := matchSinglePrefixedField("URL:", rawText, ';', false)
	if uri == "" {
		return nil
	}
	title := matchSinglePrefixedField("TITLE:", rawText, ';', false)
	return &URIParsedResult{URI: uri, Title: title}
}

// looksLikeURI is a permissive check for a generic "scheme:" or bare
// "www."/domain-style URL, used as the catch-all before falling back to
// plain text.
func looksLikeURI(s string) bool {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	if strings.HasPrefix(strings.ToLower(s), "www.") {
		return true
	}
	colon := strings.Index(s, ":")
	if colon <= 0 {
		return false
	}
	scheme := s[:colon]
	for _, c := range scheme {
		if c != '+' && c != '-' && c != '.' &&
			!(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	rest := s[colon+1:]
	return strings.HasPrefix(rest, "//") && len(rest) > 2
}

// parseURI recognizes any remaining "scheme://" or "www."-prefixed string
// as a generic URL. It is the last recognizer tried before the plain text
// fallback, so it must not claim strings already claimed upstream.
func parseURI(result *barscan.Result) ParsedResult {
	rawText := strings.TrimSpace(result.Text)
	if !looksLikeURI(rawText) {
		return nil
	}
	return &URIParsedResult{URI: rawText}
}
