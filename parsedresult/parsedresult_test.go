package parsedresult_test

import (
	"testing"

	barscan "github.com/rastergrid/barscan"
	"github.com/rastergrid/barscan/parsedresult"
)

func parse(text string) parsedresult.ParsedResult {
	result := barscan.NewResult(text, nil, nil, barscan.FormatQRCode)
	return parsedresult.Parse(result)
}

func TestMECARD(t *testing.T) {
	pr := parse("MECARD:N:Sean Owen;;")
	ab, ok := pr.(*parsedresult.AddressBookParsedResult)
	if !ok {
		t.Fatalf("got %T, want *AddressBookParsedResult", pr)
	}
	if ab.Type() != parsedresult.TypeAddressBook {
		t.Errorf("Type() = %v, want TypeAddressBook", ab.Type())
	}
	if len(ab.Names) != 1 || ab.Names[0] != "Sean Owen" {
		t.Errorf("Names = %v, want [Sean Owen]", ab.Names)
	}
	if len(ab.PhoneNumbers) != 0 || len(ab.Emails) != 0 || ab.Org != "" || ab.Note != "" {
		t.Errorf("expected all other fields empty, got %+v", ab)
	}
}

func TestMECARDMultipleFields(t *testing.T) {
	pr := parse("MECARD:N:Doe,John;TEL:+15551234567;EMAIL:john@example.com;ORG:Acme;;")
	ab, ok := pr.(*parsedresult.AddressBookParsedResult)
	if !ok {
		t.Fatalf("got %T, want *AddressBookParsedResult", pr)
	}
	if len(ab.Names) != 1 || ab.Names[0] != "Doe John" {
		t.Errorf("Names = %v, want [Doe John]", ab.Names)
	}
	if len(ab.PhoneNumbers) != 1 || ab.PhoneNumbers[0] != "+15551234567" {
		t.Errorf("PhoneNumbers = %v", ab.PhoneNumbers)
	}
	if len(ab.Emails) != 1 || ab.Emails[0] != "john@example.com" {
		t.Errorf("Emails = %v", ab.Emails)
	}
	if ab.Org != "Acme" {
		t.Errorf("Org = %q, want Acme", ab.Org)
	}
}

func TestGeoSimple(t *testing.T) {
	pr := parse("geo:1,2")
	g, ok := pr.(*parsedresult.GeoParsedResult)
	if !ok {
		t.Fatalf("got %T, want *GeoParsedResult", pr)
	}
	if g.Latitude != 1.0 || g.Longitude != 2.0 || g.Altitude != 0.0 {
		t.Errorf("got (%f, %f, %f), want (1, 2, 0)", g.Latitude, g.Longitude, g.Altitude)
	}
}

func TestGeoWithAltitude(t *testing.T) {
	pr := parse("geo:100.33,-32.3344,3.35")
	g, ok := pr.(*parsedresult.GeoParsedResult)
	if !ok {
		t.Fatalf("got %T, want *GeoParsedResult", pr)
	}
	if g.Latitude != 100.33 || g.Longitude != -32.3344 || g.Altitude != 3.35 {
		t.Errorf("got (%f, %f, %f), want (100.33, -32.3344, 3.35)", g.Latitude, g.Longitude, g.Altitude)
	}
}

func TestVCard(t *testing.T) {
	text := "BEGIN:VCARD\nN:Owen;Sean\nORG:ZXing\nTEL:+15551234567\nEMAIL:sean@example.com\nEND:VCARD"
	pr := parse(text)
	ab, ok := pr.(*parsedresult.AddressBookParsedResult)
	if !ok {
		t.Fatalf("got %T, want *AddressBookParsedResult", pr)
	}
	if len(ab.Names) != 1 || ab.Names[0] != "Sean Owen" {
		t.Errorf("Names = %v, want [Sean Owen]", ab.Names)
	}
	if ab.Org != "ZXing" {
		t.Errorf("Org = %q, want ZXing", ab.Org)
	}
}

func TestTel(t *testing.T) {
	pr := parse("tel:+14155551212")
	tp, ok := pr.(*parsedresult.TelParsedResult)
	if !ok {
		t.Fatalf("got %T, want *TelParsedResult", pr)
	}
	if tp.Number != "+14155551212" {
		t.Errorf("Number = %q", tp.Number)
	}
}

func TestMailto(t *testing.T) {
	pr := parse("mailto:foo@example.com?subject=hello")
	e, ok := pr.(*parsedresult.EmailAddressParsedResult)
	if !ok {
		t.Fatalf("got %T, want *EmailAddressParsedResult", pr)
	}
	if len(e.Addresses) != 1 || e.Addresses[0] != "foo@example.com" {
		t.Errorf("Addresses = %v", e.Addresses)
	}
	if e.Subject != "hello" {
		t.Errorf("Subject = %q, want hello", e.Subject)
	}
}

func TestSMSTO(t *testing.T) {
	pr := parse("SMSTO:+15551234567:Hello there")
	s, ok := pr.(*parsedresult.SMSParsedResult)
	if !ok {
		t.Fatalf("got %T, want *SMSParsedResult", pr)
	}
	if s.Number != "+15551234567" || s.Body != "Hello there" {
		t.Errorf("got (%q, %q)", s.Number, s.Body)
	}
}

func TestVEvent(t *testing.T) {
	text := "BEGIN:VEVENT\nSUMMARY:Team meeting\nDTSTART:20260801T090000Z\nDTEND:20260801T100000Z\nLOCATION:Room 4\nEND:VEVENT"
	pr := parse(text)
	c, ok := pr.(*parsedresult.CalendarParsedResult)
	if !ok {
		t.Fatalf("got %T, want *CalendarParsedResult", pr)
	}
	if c.Summary != "Team meeting" {
		t.Errorf("Summary = %q", c.Summary)
	}
	if c.Start != "20260801T090000Z" || c.End != "20260801T100000Z" {
		t.Errorf("got start=%q end=%q", c.Start, c.End)
	}
}

func TestBookmark(t *testing.T) {
	pr := parse("MEBKM:TITLE:Example;URL:https://example.com;;")
	u, ok := pr.(*parsedresult.URIParsedResult)
	if !ok {
		t.Fatalf("got %T, want *URIParsedResult", pr)
	}
	if u.Title != "Example" {
		t.Errorf("Title = %q", u.Title)
	}
	if u.URI != "https://example.com" {
		t.Errorf("URI = %q", u.URI)
	}
}

func TestGenericURI(t *testing.T) {
	pr := parse("https://example.com/path")
	u, ok := pr.(*parsedresult.URIParsedResult)
	if !ok {
		t.Fatalf("got %T, want *URIParsedResult", pr)
	}
	if u.URI != "https://example.com/path" {
		t.Errorf("URI = %q", u.URI)
	}
}

func TestPlainTextFallback(t *testing.T) {
	pr := parse("just some plain text, nothing special")
	tp, ok := pr.(*parsedresult.TextParsedResult)
	if !ok {
		t.Fatalf("got %T, want *TextParsedResult", pr)
	}
	if tp.Type() != parsedresult.TypeText {
		t.Errorf("Type() = %v, want TypeText", tp.Type())
	}
}

func TestBizcard(t *testing.T) {
	pr := parse("BIZCARD:N:John;X:Doe;C:Acme;A:123 Main St;B:+15551234567;;")
	ab, ok := pr.(*parsedresult.AddressBookParsedResult)
	if !ok {
		t.Fatalf("got %T, want *AddressBookParsedResult", pr)
	}
	if len(ab.Names) != 1 || ab.Names[0] != "John Doe" {
		t.Errorf("Names = %v, want [John Doe]", ab.Names)
	}
	if ab.Org != "Acme" {
		t.Errorf("Org = %q, want Acme", ab.Org)
	}
}

func TestAddressBookAU(t *testing.T) {
	pr := parse("MEMORY:Jane Smith\nTEL:+15557654321\n")
	ab, ok := pr.(*parsedresult.AddressBookParsedResult)
	if !ok {
		t.Fatalf("got %T, want *AddressBookParsedResult", pr)
	}
	if len(ab.Names) != 1 || ab.Names[0] != "Jane Smith" {
		t.Errorf("Names = %v", ab.Names)
	}
	if len(ab.PhoneNumbers) != 1 || ab.PhoneNumbers[0] != "+15557654321" {
		t.Errorf("PhoneNumbers = %v", ab.PhoneNumbers)
	}
}
