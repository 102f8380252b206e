// Package analyzer wraps the underlying morphological analysis engine behind
// the narrow contract the tokenizer facade consumes: load a dictionary once,
// then run isolated analysis sessions against it.
package analyzer

// Mode is the engine-level segmentation mode. The three units follow the
// conventional A/B/C granularity scale, A being the shortest units.
type Mode int

const (
	ModeA Mode = iota
	ModeB
	ModeC
)

// Config is a fully resolved analyzer configuration. All paths are absolute
// or caller-relative filesystem paths; empty optional fields mean "engine
// default".
type Config struct {
	// SystemDictPath points at the compiled system dictionary. Required.
	SystemDictPath string
	// UserDictPath optionally points at a user dictionary.
	UserDictPath string
	// ResourcePath optionally names the directory holding auxiliary
	// definition files. Engines that compile those definitions into the
	// dictionary binary may ignore it.
	ResourcePath string
	// CharDefPath optionally names a character definition file, relative
	// to ResourcePath.
	CharDefPath string
}

// Morpheme is the engine's view of one recognized unit.
type Morpheme struct {
	Surface        string
	PartOfSpeech   []string
	DictionaryForm string
	NormalizedForm string
	ReadingForm    string
	OOV            bool
	WordID         int64
	Begin          int
	End            int
}

// Dictionary is a loaded, immutable dictionary handle. It is safe to share
// between any number of sessions and goroutines once Load returns.
type Dictionary interface {
	// NewSession creates a fresh analysis session bound to this dictionary
	// and the given mode. Sessions are single-use and not safe for
	// concurrent use; create one per analysis.
	NewSession(mode Mode) Session
}

// Session accumulates input text and runs one segmentation pass over it.
type Session interface {
	// Reset discards any buffered text and prior results.
	Reset()
	// Append adds text to the session's input buffer.
	Append(text string)
	// Run segments the buffered text to completion.
	Run() error
	// Morphemes returns the segmentation result in input order.
	// It fails if Run has not completed successfully.
	Morphemes() ([]Morpheme, error)
}

// Load opens the dictionary described by cfg and returns a shareable handle.
func Load(cfg Config) (Dictionary, error) {
	return loadKagome(cfg)
}
