package tokenizer

import (
	"math"

	"github.com/hiraoka/sudago/internal/analyzer"
)

// Morpheme is one recognized unit of the input text, flattened into a
// serializable record. Begin and End are byte offsets into the original
// input, forming the half-open range [Begin, End).
type Morpheme struct {
	// Surface is the exact substring as it appeared in the input.
	Surface string `json:"surface"`
	// PartOfSpeech holds the hierarchical tags outermost first, up to six
	// levels deep, exactly as the analyzer reported them.
	PartOfSpeech []string `json:"part_of_speech"`
	// DictionaryForm is the lemma.
	DictionaryForm string `json:"dictionary_form"`
	NormalizedForm string `json:"normalized_form"`
	// ReadingForm is the phonetic reading, katakana by dictionary
	// convention.
	ReadingForm string `json:"reading_form"`
	IsOOV       bool   `json:"is_oov"`
	// WordID identifies the dictionary entry; -1 for out-of-vocabulary
	// words.
	WordID int32  `json:"word_id"`
	Begin  uint32 `json:"begin"`
	End    uint32 `json:"end"`
}

// projectMorphemes flattens the analyzer's result into Morpheme records,
// preserving order. It is a pure structural transform: no filtering,
// re-segmentation, or tag normalization happens here.
func projectMorphemes(raw []analyzer.Morpheme) ([]Morpheme, error) {
	out := make([]Morpheme, 0, len(raw))
	for _, m := range raw {
		if m.WordID > math.MaxInt32 || m.WordID < math.MinInt32 {
			return nil, errorf(ErrTokenize, "word id %d does not fit in 32 bits", m.WordID)
		}
		out = append(out, Morpheme{
			Surface:        m.Surface,
			PartOfSpeech:   m.PartOfSpeech,
			DictionaryForm: m.DictionaryForm,
			NormalizedForm: m.NormalizedForm,
			ReadingForm:    m.ReadingForm,
			IsOOV:          m.OOV,
			WordID:         int32(m.WordID),
			Begin:          uint32(m.Begin),
			End:            uint32(m.End),
		})
	}
	return out, nil
}
