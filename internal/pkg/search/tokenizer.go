// Package search provides the tokenizers used to build and query the
// inverted text index. Multiple tokenizers run over the same text to balance
// precision and recall: exact words score highest, prefixes allow partial
// matches, and character n-grams give fuzzy-like matching.
package search

import (
	"strings"
	"unicode"
)

// Token represents a token value with the weight of the tokenizer that produced it.
type Token struct {
	Value  string
	Weight int
}

// Tokenizer splits text into weighted tokens.
type Tokenizer interface {
	Tokenize(text string) []Token
	Weight() int
}

// DefaultTokenizers returns the standard tokenizer chain used for both
// indexing and querying. Indexing and search must use the same chain or
// query tokens will not match index entries.
func DefaultTokenizers() []Tokenizer {
	return []Tokenizer{
		NewWordTokenizer(),
		NewPrefixTokenizer(),
		NewNGramTokenizer(),
	}
}

// normalize lowercases the text, replaces every non-alphanumeric rune with a
// space and collapses runs of whitespace.
func normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if r > unicode.MaxASCII || (!unicode.IsLower(r) && !unicode.IsDigit(r)) {
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(sb.String())
}

// extractWords returns the normalized words of at least two characters.
func extractWords(text string) []string {
	fields := strings.Fields(normalize(text))
	words := fields[:0]
	for _, w := range fields {
		if len(w) >= 2 {
			words = append(words, w)
		}
	}
	return words
}

// WordTokenizer splits text into distinct whole words.
type WordTokenizer struct {
	weight int
}

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{weight: 20}
}

func (t *WordTokenizer) Weight() int { return t.weight }

func (t *WordTokenizer) Tokenize(text string) []Token {
	seen := make(map[string]struct{})
	tokens := make([]Token, 0, 16)
	for _, w := range extractWords(text) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, Token{Value: w, Weight: t.weight})
	}
	return tokens
}

// PrefixTokenizer generates word prefixes of minPrefixLen and longer,
// enabling partial-word matches while typing.
type PrefixTokenizer struct {
	weight       int
	minPrefixLen int
}

func NewPrefixTokenizer() *PrefixTokenizer {
	return &PrefixTokenizer{weight: 5, minPrefixLen: 4}
}

func (t *PrefixTokenizer) Weight() int { return t.weight }

func (t *PrefixTokenizer) Tokenize(text string) []Token {
	seen := make(map[string]struct{})
	for _, w := range extractWords(text) {
		if len(w) < t.minPrefixLen {
			continue
		}
		for i := t.minPrefixLen; i <= len(w); i++ {
			seen[w[:i]] = struct{}{}
		}
	}
	tokens := make([]Token, 0, len(seen))
	for v := range seen {
		tokens = append(tokens, Token{Value: v, Weight: t.weight})
	}
	return tokens
}

// NGramTokenizer creates character n-grams for fuzzy-like matching.
type NGramTokenizer struct {
	weight   int
	ngramLen int
}

func NewNGramTokenizer() *NGramTokenizer {
	return &NGramTokenizer{weight: 1, ngramLen: 3}
}

func (t *NGramTokenizer) Weight() int { return t.weight }

func (t *NGramTokenizer) Tokenize(text string) []Token {
	seen := make(map[string]struct{})
	for _, w := range extractWords(text) {
		if len(w) < t.ngramLen {
			continue
		}
		for i := 0; i+t.ngramLen <= len(w); i++ {
			seen[w[i:i+t.ngramLen]] = struct{}{}
		}
	}
	tokens := make([]Token, 0, len(seen))
	for v := range seen {
		tokens = append(tokens, Token{Value: v, Weight: t.weight})
	}
	return tokens
}

// TokenizeAll runs every tokenizer over the text and concatenates the results.
func TokenizeAll(tokenizers []Tokenizer, text string) []Token {
	tokens := make([]Token, 0, 64)
	for _, tk := range tokenizers {
		tokens = append(tokens, tk.Tokenize(text)...)
	}
	return tokens
}
