// Package tokenizer splits raw text into sentences and words.
package tokenizer

import (
	"strings"
	"unicode"
)

// Sentence is one tokenized sentence: the trimmed raw text and its words.
type Sentence struct {
	Raw   string
	Words []string
}

const wordPunct = "!\"#$%&'()*+,-./:;<=>?@[]\\^_`{|}~“”‘’«»"

// Tokenize splits text into sentences on terminal punctuation (., !, ?)
// followed by whitespace or end of text. A run of terminal punctuation
// folds into a single boundary. Text without terminal punctuation is a
// single sentence; whitespace-only text yields no sentences.
func Tokenize(text string) []Sentence {
	var sentences []Sentence
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && isTerminal(runes[j]) {
			j++
		}
		if j >= len(runes) || unicode.IsSpace(runes[j]) {
			if s, ok := makeSentence(string(runes[start:j])); ok {
				sentences = append(sentences, s)
			}
			start = j
		}
		i = j
	}
	if s, ok := makeSentence(string(runes[start:])); ok {
		sentences = append(sentences, s)
	}
	return sentences
}

func makeSentence(raw string) (Sentence, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Sentence{}, false
	}
	return Sentence{Raw: raw, Words: Words(raw)}, true
}

// Words splits a sentence on whitespace and strips leading and trailing
// punctuation from each token, so "word." and "word" count identically.
// Interior hyphens and apostrophes survive; case is preserved.
func Words(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.Trim(field, wordPunct)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// Canonical returns the lower-cased form used for frequency counting.
func Canonical(word string) string {
	return strings.ToLower(word)
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
