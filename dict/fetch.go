package dict

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher downloads dictionary archives and extracts the dictionary file.
type Fetcher struct {
	// Client is the HTTP client used for downloads. Defaults to a client
	// with no timeout; dictionary archives can take minutes on slow links,
	// so bound the download with the context instead.
	Client *http.Client
	// BaseURL overrides the canonical distribution endpoint. Used in tests.
	BaseURL string
}

// NewFetcher returns a Fetcher using the canonical distribution endpoint.
func NewFetcher() *Fetcher {
	return &Fetcher{Client: &http.Client{}}
}

// Fetch downloads the archive for the given size and version into destDir,
// extracts the dictionary file, and returns its path. The archive itself is
// removed after extraction. An empty version selects "latest".
func (f *Fetcher) Fetch(ctx context.Context, size Size, version, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating destination directory: %w", err)
	}

	archivePath, err := f.download(ctx, f.url(size, version), destDir)
	if err != nil {
		return "", err
	}
	defer os.Remove(archivePath)

	dicPath, err := extractDic(archivePath, GetInfo(size, version).DicFilename, destDir)
	if err != nil {
		return "", err
	}
	return dicPath, nil
}

func (f *Fetcher) url(size Size, version string) string {
	u := DownloadURL(size, version)
	if f.BaseURL != "" {
		u = f.BaseURL + strings.TrimPrefix(u, BaseURL)
	}
	return u
}

func (f *Fetcher) download(ctx context.Context, url, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(destDir, "sudachi-*.zip")
	if err != nil {
		return "", fmt.Errorf("creating archive file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing archive: %w", err)
	}
	return tmp.Name(), nil
}

// extractDic pulls the named dictionary file out of the archive into
// destDir. Published archives nest the file under a version directory, so
// members are matched by base name.
func extractDic(archivePath, dicFilename, destDir string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	for _, member := range r.File {
		if filepath.Base(member.Name) != dicFilename {
			continue
		}
		src, err := member.Open()
		if err != nil {
			return "", fmt.Errorf("opening archive member %s: %w", member.Name, err)
		}
		defer src.Close()

		outPath := filepath.Join(destDir, dicFilename)
		out, err := os.Create(outPath)
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", outPath, err)
		}
		if _, err := io.Copy(out, src); err != nil {
			out.Close()
			os.Remove(outPath)
			return "", fmt.Errorf("extracting %s: %w", dicFilename, err)
		}
		if err := out.Close(); err != nil {
			return "", fmt.Errorf("closing %s: %w", outPath, err)
		}
		return outPath, nil
	}

	return "", fmt.Errorf("archive does not contain %s", dicFilename)
}
