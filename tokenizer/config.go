package tokenizer

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hiraoka/sudago/internal/analyzer"
)

// Config specifies how to construct a Tokenizer. Only DictionaryPath is
// required; the remaining fields refine or override what the optional
// settings file provides.
type Config struct {
	// DictionaryPath points at the compiled system dictionary.
	DictionaryPath string
	// ConfigPath optionally points at a JSON settings file.
	ConfigPath string
	// ResourcePath optionally names the directory holding auxiliary
	// definition files (character classes, unknown-word rules).
	ResourcePath string
	// UserDictionaryPath optionally points at a user dictionary.
	UserDictionaryPath string
}

// settings mirrors the subset of the analyzer settings file this facade
// reads. Unknown keys are ignored.
type settings struct {
	SystemDict string   `json:"systemDict"`
	UserDict   []string `json:"userDict"`
	CharDef    string   `json:"characterDefinitionFile"`
}

// resolve merges the optional settings file with the explicit fields into a
// fully specified analyzer configuration. Explicit fields always win over
// anything the settings file provides.
func (c Config) resolve() (analyzer.Config, error) {
	if c.DictionaryPath == "" {
		return analyzer.Config{}, errorf(ErrInvalidArgument, "dictionary path must not be empty")
	}

	var base settings
	if c.ConfigPath != "" {
		data, err := os.ReadFile(c.ConfigPath)
		if err != nil {
			return analyzer.Config{}, wrapError(ErrConfig, err)
		}
		if err := json.Unmarshal(data, &base); err != nil {
			return analyzer.Config{}, wrapError(ErrConfig, err)
		}
	}

	resolved := analyzer.Config{
		SystemDictPath: c.DictionaryPath,
		CharDefPath:    base.CharDef,
	}

	// Resource files are conventionally co-located with the settings file,
	// so its directory takes precedence over the dictionary's.
	resolved.ResourcePath = c.ResourcePath
	if resolved.ResourcePath == "" && c.ConfigPath != "" {
		resolved.ResourcePath = parentDir(c.ConfigPath)
	}
	if resolved.ResourcePath == "" {
		resolved.ResourcePath = parentDir(c.DictionaryPath)
	}

	if len(base.UserDict) > 0 {
		resolved.UserDictPath = base.UserDict[0]
	}
	if c.UserDictionaryPath != "" {
		resolved.UserDictPath = c.UserDictionaryPath
	}

	return resolved, nil
}

// parentDir returns the directory containing path, or "" when path is a bare
// file name with no usable parent.
func parentDir(path string) string {
	dir := filepath.Dir(path)
	if dir == "." && filepath.Base(path) == path {
		return ""
	}
	return dir
}
