package parsedresult

// TextParsedResult is the catch-all result for a string that no other
// recognizer claimed.
type TextParsedResult struct {
	Text string
}

func (*TextParsedResult) Type() Type { return TypeText }

func (r *TextParsedResult) DisplayResult() string { return r.Text }

func newTextResult(text string) ParsedResult {
	return &TextParsedResult{Text: text}
}
