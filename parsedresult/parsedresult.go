// Package parsedresult recognizes structured data (contact cards, URLs,
// geo coordinates, calendar events, and the like) inside a decoded barcode
// string. Each recognizer either returns a typed ParsedResult or declines,
// letting the next recognizer in the chain try.
package parsedresult

import barscan "github.com/rastergrid/barscan"

// Type identifies the kind of structured data a ParsedResult carries.
type Type int

const (
	TypeAddressBook Type = iota
	TypeEmailAddress
	TypeProduct
	TypeURI
	TypeText
	TypeGeo
	TypeTel
	TypeSMS
	TypeCalendar
	TypeWifi
	TypeISBN
)

func (t Type) String() string {
	switch t {
	case TypeAddressBook:
		return "ADDRESSBOOK"
	case TypeEmailAddress:
		return "EMAIL_ADDRESS"
	case TypeProduct:
		return "PRODUCT"
	case TypeURI:
		return "URI"
	case TypeText:
		return "TEXT"
	case TypeGeo:
		return "GEO"
	case TypeTel:
		return "TEL"
	case TypeSMS:
		return "SMS"
	case TypeCalendar:
		return "CALENDAR"
	case TypeWifi:
		return "WIFI"
	case TypeISBN:
		return "ISBN"
	default:
		return "UNKNOWN"
	}
}

// ParsedResult is a typed interpretation of a decoded barcode string.
type ParsedResult interface {
	// Type identifies which concrete kind of result this is.
	Type() Type

	// DisplayResult renders a human-readable, multi-line summary.
	DisplayResult() string
}

// recognizer attempts to interpret a Result's text, returning nil to
// decline. Recognizers are tried in order by Parse.
type recognizer func(result *barscan.Result) ParsedResult

// chain lists every recognizer before the catch-all Text fallback, in the
// order they are tried.
var chain = []recognizer{
	parseBookmark,
	parseMECARD,
	parseAddressBookAU,
	parseBizcard,
	parseVCard,
	parseVEvent,
	parseGeo,
	parseTel,
	parseEmail,
	parseSMS,
	parseURI,
}

// Parse runs the full recognizer chain against result.Text and returns the
// first match, or a TextParsedResult if nothing more specific matched.
func Parse(result *barscan.Result) ParsedResult {
	if result == nil {
		return nil
	}
	for _, r := range chain {
		if pr := r(result); pr != nil {
			return pr
		}
	}
	return newTextResult(result.Text)
}
