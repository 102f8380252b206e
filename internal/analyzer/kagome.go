package analyzer

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// kagomeDictionary adapts a kagome tokenizer to the Dictionary contract.
// The wrapped tokenizer is read-only after construction, so one handle can
// serve concurrent sessions.
type kagomeDictionary struct {
	tok *tokenizer.Tokenizer
}

func loadKagome(cfg Config) (Dictionary, error) {
	if cfg.SystemDictPath == "" {
		return nil, fmt.Errorf("system dictionary path is empty")
	}

	sysDict, err := dict.LoadDictFile(cfg.SystemDictPath)
	if err != nil {
		return nil, fmt.Errorf("loading system dictionary %s: %w", cfg.SystemDictPath, err)
	}

	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if cfg.UserDictPath != "" {
		userDict, err := dict.NewUserDict(cfg.UserDictPath)
		if err != nil {
			return nil, fmt.Errorf("loading user dictionary %s: %w", cfg.UserDictPath, err)
		}
		opts = append(opts, tokenizer.UserDict(userDict))
	}

	tok, err := tokenizer.New(sysDict, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing analyzer: %w", err)
	}

	return &kagomeDictionary{tok: tok}, nil
}

func (d *kagomeDictionary) NewSession(mode Mode) Session {
	return &kagomeSession{dict: d, mode: mode}
}

// kagomeSession buffers input text and holds the result of one analysis run.
type kagomeSession struct {
	dict   *kagomeDictionary
	mode   Mode
	buf    strings.Builder
	tokens []tokenizer.Token
	ran    bool
}

func (s *kagomeSession) Reset() {
	s.buf.Reset()
	s.tokens = nil
	s.ran = false
}

func (s *kagomeSession) Append(text string) {
	s.buf.WriteString(text)
}

func (s *kagomeSession) Run() error {
	s.tokens = s.dict.tok.Analyze(s.buf.String(), kagomeMode(s.mode))
	s.ran = true
	return nil
}

func (s *kagomeSession) Morphemes() ([]Morpheme, error) {
	if !s.ran {
		return nil, fmt.Errorf("session has not been run")
	}
	morphemes := make([]Morpheme, 0, len(s.tokens))
	for _, t := range s.tokens {
		if t.Class == tokenizer.DUMMY {
			// BOS/EOS markers carry no text.
			continue
		}
		morphemes = append(morphemes, convertToken(t))
	}
	return morphemes, nil
}

// kagomeMode maps the A/B/C granularity scale onto kagome's three modes.
// Extended splits the most finely, Normal the least, so the mapping is
// monotone in granularity and a bijection.
func kagomeMode(m Mode) tokenizer.TokenizeMode {
	switch m {
	case ModeA:
		return tokenizer.Extended
	case ModeB:
		return tokenizer.Search
	default:
		return tokenizer.Normal
	}
}

func convertToken(t tokenizer.Token) Morpheme {
	m := Morpheme{
		Surface:        t.Surface,
		PartOfSpeech:   t.POS(),
		DictionaryForm: t.Surface,
		NormalizedForm: t.Surface,
		OOV:            t.Class == tokenizer.UNKNOWN,
		WordID:         int64(t.ID),
		Begin:          t.Position,
		End:            t.Position + len(t.Surface),
	}
	if base, ok := t.BaseForm(); ok && base != "*" {
		m.DictionaryForm = base
		m.NormalizedForm = base
	}
	if reading, ok := t.Reading(); ok && reading != "*" {
		m.ReadingForm = reading
	}
	if m.OOV {
		m.WordID = -1
	}
	return m
}
