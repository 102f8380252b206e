// Package dict describes the distributable system dictionary artifacts: the
// three published size variants, their canonical download URLs, and a
// fetcher that retrieves and unpacks them.
package dict

import "fmt"

// BaseURL is the canonical distribution endpoint for compiled dictionaries.
const BaseURL = "https://d2ej7fkh96fzlu.cloudfront.net/sudachidict"

// Size selects one of the three published dictionary variants.
type Size int

const (
	// Small carries the minimum vocabulary, around 50MB.
	Small Size = iota
	// Core carries the basic vocabulary, around 70MB. Recommended.
	Core
	// Full carries the complete vocabulary, around 1GB.
	Full
)

// String returns the size token used in archive and file names.
func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Core:
		return "core"
	default:
		return "full"
	}
}

// ParseSize accepts the size tokens small/core/full.
func ParseSize(s string) (Size, error) {
	switch s {
	case "small":
		return Small, nil
	case "core":
		return Core, nil
	case "full":
		return Full, nil
	default:
		return 0, fmt.Errorf("unknown dictionary size %q", s)
	}
}

// Info describes one downloadable dictionary artifact. It is computed on
// demand and never persisted.
type Info struct {
	Name        string `json:"name"`
	SizeMB      int    `json:"size_mb"`
	Description string `json:"description"`
	DownloadURL string `json:"download_url"`
	// DicFilename is the dictionary file's name inside the archive.
	DicFilename string `json:"dic_filename"`
}

// DownloadURL builds the archive URL for the given size and version. An
// empty version selects the "latest" alias.
func DownloadURL(size Size, version string) string {
	if version == "" {
		version = "latest"
	}
	return fmt.Sprintf("%s/sudachi-dictionary-%s-%s.zip", BaseURL, version, size)
}

// GetInfo describes the artifact for the given size and version.
func GetInfo(size Size, version string) Info {
	var sizeMB int
	var description string
	switch size {
	case Small:
		sizeMB, description = 50, "Minimum vocabulary dictionary"
	case Core:
		sizeMB, description = 70, "Basic vocabulary dictionary (recommended)"
	default:
		sizeMB, description = 1000, "Complete vocabulary dictionary"
	}
	return Info{
		Name:        size.String(),
		SizeMB:      sizeMB,
		Description: description,
		DownloadURL: DownloadURL(size, version),
		DicFilename: fmt.Sprintf("system_%s.dic", size),
	}
}

// AllInfo returns the three variants in order Small, Core, Full.
func AllInfo(version string) []Info {
	return []Info{
		GetInfo(Small, version),
		GetInfo(Core, version),
		GetInfo(Full, version),
	}
}
