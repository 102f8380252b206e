package tokenizer

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiraoka/sudago/internal/analyzer"
)

// fakeDictionary is an analyzer.Dictionary that splits buffered text on a
// fixed rune boundary. Deterministic, so concurrent calls must agree.
type fakeDictionary struct {
	runErr       error
	morphemesErr error
	morphemes    func(text string, mode analyzer.Mode) []analyzer.Morpheme
}

func (d *fakeDictionary) NewSession(mode analyzer.Mode) analyzer.Session {
	return &fakeSession{dict: d, mode: mode}
}

type fakeSession struct {
	dict *fakeDictionary
	mode analyzer.Mode
	buf  string
	ran  bool
}

func (s *fakeSession) Reset()             { s.buf = ""; s.ran = false }
func (s *fakeSession) Append(text string) { s.buf += text }

func (s *fakeSession) Run() error {
	if s.dict.runErr != nil {
		return s.dict.runErr
	}
	s.ran = true
	return nil
}

func (s *fakeSession) Morphemes() ([]analyzer.Morpheme, error) {
	if s.dict.morphemesErr != nil {
		return nil, s.dict.morphemesErr
	}
	if !s.ran {
		return nil, errors.New("session has not been run")
	}
	if s.dict.morphemes != nil {
		return s.dict.morphemes(s.buf, s.mode), nil
	}
	return splitRunes(s.buf), nil
}

// splitRunes emits one morpheme per rune, with faithful byte offsets.
func splitRunes(text string) []analyzer.Morpheme {
	var out []analyzer.Morpheme
	offset := 0
	for i, r := range text {
		surface := string(r)
		out = append(out, analyzer.Morpheme{
			Surface:        surface,
			PartOfSpeech:   []string{"名詞", "普通名詞"},
			DictionaryForm: surface,
			NormalizedForm: surface,
			ReadingForm:    surface,
			WordID:         int64(i),
			Begin:          offset,
			End:            offset + len(surface),
		})
		offset += len(surface)
	}
	return out
}

func newFakeTokenizer(dict analyzer.Dictionary) *Tokenizer {
	return &Tokenizer{dict: dict}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tok := newFakeTokenizer(&fakeDictionary{})
	for _, mode := range []Mode{ModeShort, ModeMiddle, ModeLong} {
		morphemes, err := tok.Tokenize("", mode)
		require.NoError(t, err, "mode %s", mode)
		assert.NotNil(t, morphemes)
		assert.Empty(t, morphemes)
	}
}

func TestTokenizeProjection(t *testing.T) {
	tok := newFakeTokenizer(&fakeDictionary{})
	morphemes, err := tok.Tokenize("日本語", ModeLong)
	require.NoError(t, err)
	require.Len(t, morphemes, 3)

	assert.Equal(t, "日", morphemes[0].Surface)
	assert.Equal(t, []string{"名詞", "普通名詞"}, morphemes[0].PartOfSpeech)
	assert.Equal(t, "日", morphemes[0].DictionaryForm)
	assert.Equal(t, "日", morphemes[0].ReadingForm)
	assert.False(t, morphemes[0].IsOOV)

	// Offsets are byte-based, non-decreasing, half-open, and within the
	// input.
	text := "日本語"
	var prev uint32
	for _, m := range morphemes {
		assert.GreaterOrEqual(t, m.Begin, prev)
		assert.Greater(t, m.End, m.Begin)
		assert.LessOrEqual(t, int(m.End), len(text))
		assert.Equal(t, m.Surface, text[m.Begin:m.End])
		prev = m.Begin
	}
}

func TestTokenizeOOVWordID(t *testing.T) {
	dict := &fakeDictionary{
		morphemes: func(text string, mode analyzer.Mode) []analyzer.Morpheme {
			return []analyzer.Morpheme{{
				Surface: text,
				OOV:     true,
				WordID:  -1,
				Begin:   0,
				End:     len(text),
			}}
		},
	}
	morphemes, err := newFakeTokenizer(dict).Tokenize("グーグル", ModeLong)
	require.NoError(t, err)
	require.Len(t, morphemes, 1)
	assert.True(t, morphemes[0].IsOOV)
	assert.Equal(t, int32(-1), morphemes[0].WordID)
}

func TestTokenizeWordIDOverflow(t *testing.T) {
	dict := &fakeDictionary{
		morphemes: func(text string, mode analyzer.Mode) []analyzer.Morpheme {
			return []analyzer.Morpheme{{Surface: text, WordID: math.MaxInt32 + 1, End: len(text)}}
		},
	}
	_, err := newFakeTokenizer(dict).Tokenize("x", ModeShort)
	require.Error(t, err)
	assert.Equal(t, ErrTokenize, KindOf(err))
	assert.Contains(t, err.Error(), "32 bits")
}

func TestTokenizeRunError(t *testing.T) {
	dict := &fakeDictionary{runErr: errors.New("lattice exploded")}
	_, err := newFakeTokenizer(dict).Tokenize("テスト", ModeMiddle)
	require.Error(t, err)
	assert.Equal(t, ErrTokenize, KindOf(err))
	assert.Contains(t, err.Error(), "lattice exploded")
}

func TestTokenizeMorphemesError(t *testing.T) {
	dict := &fakeDictionary{morphemesErr: errors.New("materialization failed")}
	_, err := newFakeTokenizer(dict).Tokenize("テスト", ModeMiddle)
	require.Error(t, err)
	assert.Equal(t, ErrTokenize, KindOf(err))
}

func TestTokenizeModeReachesSession(t *testing.T) {
	var got []analyzer.Mode
	var mu sync.Mutex
	dict := &fakeDictionary{
		morphemes: func(text string, mode analyzer.Mode) []analyzer.Morpheme {
			mu.Lock()
			got = append(got, mode)
			mu.Unlock()
			return nil
		},
	}
	tok := newFakeTokenizer(dict)
	for _, mode := range []Mode{ModeShort, ModeMiddle, ModeLong} {
		_, err := tok.Tokenize("x", mode)
		require.NoError(t, err)
	}
	assert.Equal(t, []analyzer.Mode{analyzer.ModeA, analyzer.ModeB, analyzer.ModeC}, got)
}

func TestTokenizeConcurrent(t *testing.T) {
	tok := newFakeTokenizer(&fakeDictionary{})
	want, err := tok.Tokenize("すもももももももものうち", ModeShort)
	require.NoError(t, err)

	const callers = 16
	results := make([][]Morpheme, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = tok.Tokenize("すもももももももものうち", ModeShort)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestNewWithNonexistentDictionary(t *testing.T) {
	tok, err := NewFromDictionary("/nonexistent/path/system.dic")
	require.Error(t, err)
	assert.Nil(t, tok)
	assert.Equal(t, ErrDictionaryLoad, KindOf(err))
	assert.NotEmpty(t, err.Error())
}

func TestTokenizeTextWithNonexistentDictionary(t *testing.T) {
	_, err := TokenizeText("テスト", "/nonexistent/path/system.dic", ModeLong)
	require.Error(t, err)
	assert.Equal(t, ErrDictionaryLoad, KindOf(err))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
	tok := newFakeTokenizer(&fakeDictionary{})
	assert.Equal(t, Version(), tok.Version())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrDictionaryLoad, "failed to load dictionary: boom"},
		{ErrConfig, "failed to load config: boom"},
		{ErrTokenize, "tokenization failed: boom"},
		{ErrInvalidArgument, "invalid argument: boom"},
	}
	for _, tt := range tests {
		err := wrapError(tt.kind, fmt.Errorf("boom"))
		assert.Equal(t, tt.want, err.Error())
		assert.Equal(t, tt.kind, KindOf(err))
	}
}
