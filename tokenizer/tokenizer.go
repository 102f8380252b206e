// Package tokenizer provides a Japanese morphological analysis facade over a
// dictionary-backed analyzer engine: resolve a configuration, load the
// dictionary once, then segment text into structured morphemes at a chosen
// granularity.
package tokenizer

import (
	"github.com/hiraoka/sudago/internal/analyzer"
)

// version is the facade's own release version, independent of the analyzer
// engine's.
const version = "0.3.1"

// Version returns the library version.
func Version() string { return version }

// Tokenizer is a long-lived morphological analyzer bound to one loaded
// dictionary. A fully constructed Tokenizer is safe for concurrent use:
// every Tokenize call runs in its own analysis session and only reads the
// shared dictionary handle.
type Tokenizer struct {
	dict analyzer.Dictionary
}

// New creates a Tokenizer from the given configuration. The configuration is
// resolved first (settings file, resource-directory inference) and then the
// dictionary is loaded, so a construction failure never leaks a half-loaded
// dictionary.
func New(cfg Config) (*Tokenizer, error) {
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	dict, err := analyzer.Load(resolved)
	if err != nil {
		return nil, wrapError(ErrDictionaryLoad, err)
	}
	return &Tokenizer{dict: dict}, nil
}

// NewFromDictionary creates a Tokenizer from just a dictionary path, with no
// settings file, resource directory, or user dictionary.
func NewFromDictionary(path string) (*Tokenizer, error) {
	return New(Config{DictionaryPath: path})
}

// Tokenize segments text at the given granularity and returns the morphemes
// in input order. The empty string yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string, mode Mode) ([]Morpheme, error) {
	session := t.dict.NewSession(mode.analyzerMode())
	session.Reset()
	session.Append(text)
	if err := session.Run(); err != nil {
		return nil, wrapError(ErrTokenize, err)
	}
	raw, err := session.Morphemes()
	if err != nil {
		return nil, wrapError(ErrTokenize, err)
	}
	return projectMorphemes(raw)
}

// Version returns the library version.
func (t *Tokenizer) Version() string { return version }

// TokenizeText tokenizes text in one shot, constructing a throwaway
// Tokenizer from dictionaryPath. Reuse a Tokenizer instead when tokenizing
// repeatedly; dictionary loading dominates the cost of a single call.
func TokenizeText(text, dictionaryPath string, mode Mode) ([]Morpheme, error) {
	t, err := NewFromDictionary(dictionaryPath)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(text, mode)
}
