package knowledge

import "strings"

// minTokenLen drops stop-word sized tokens ("a", "to") that would match
// every passage by substring.
const minTokenLen = 3

// KeywordSearch returns the first k documents, in corpus order, whose text or
// destination contains any whitespace-separated word of query.
func KeywordSearch(docs []Document, query string, k int) []Document {
	tokens := make([]string, 0)
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		tok = strings.Trim(tok, ".,;:!?\"'()")
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}

	out := make([]Document, 0, max(k, 0))
	if len(tokens) == 0 || k <= 0 {
		return out
	}
	for _, d := range docs {
		text := strings.ToLower(d.Text)
		dest := strings.ToLower(d.Destination)
		for _, tok := range tokens {
			if strings.Contains(text, tok) || strings.Contains(dest, tok) {
				out = append(out, d)
				break
			}
		}
		if len(out) == k {
			break
		}
	}
	return out
}

// Texts projects documents to their passage text.
func Texts(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Text
	}
	return out
}
