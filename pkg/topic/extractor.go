package topic

import "strings"

// Extractor finds vocabulary topics mentioned in free text.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	canonical []string
	folded    []string
}

// NewExtractor creates an Extractor for vocabulary. Empty entries are ignored and
// entries that differ only by case are collapsed into the first spelling.
func NewExtractor(vocabulary []string) *Extractor {
	e := &Extractor{}
	seen := make(map[string]struct{}, len(vocabulary))
	for _, term := range vocabulary {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		e.canonical = append(e.canonical, term)
		e.folded = append(e.folded, key)
	}
	return e
}

// NewDefaultExtractor creates an Extractor over DefaultVocabulary.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultVocabulary)
}

// Extract joins texts with a single space and returns, in vocabulary order, the
// canonical spelling of every term that occurs as a case-insensitive substring.
// Matching is plain substring without word boundaries, so "objects" yields "Object".
func (e *Extractor) Extract(texts ...string) []string {
	haystack := strings.ToLower(strings.Join(texts, " "))
	if strings.TrimSpace(haystack) == "" {
		return []string{}
	}

	found := make([]string, 0, 4)
	for i, term := range e.folded {
		if strings.Contains(haystack, term) {
			found = append(found, e.canonical[i])
		}
	}
	return found
}

// Vocabulary returns a copy of the canonical vocabulary.
func (e *Extractor) Vocabulary() []string {
	out := make([]string, len(e.canonical))
	copy(out, e.canonical)
	return out
}
