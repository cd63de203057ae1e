package ui

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gap "github.com/muesli/go-app-paths"
)

// imagesDir returns the directory generated images are written to,
// creating it on first use.
func imagesDir() (string, error) {
	scope := gap.NewScope(gap.User, "yahoooo-study")
	dir, err := scope.DataPath("images")
	if err != nil {
		return "", fmt.Errorf("locating image directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}
	return dir, nil
}

// saveImages decodes base64 PNG payloads and writes them under the app
// image directory. It returns the written paths in payload order.
func saveImages(prefix string, payloads []string) ([]string, error) {
	dir, err := imagesDir()
	if err != nil {
		return nil, err
	}
	return saveImagesTo(dir, prefix, payloads)
}

func saveImagesTo(dir, prefix string, payloads []string) ([]string, error) {
	stamp := time.Now().Format("20060102-150405")
	paths := make([]string, 0, len(payloads))
	for i, payload := range payloads {
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding image %d: %w", i+1, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s-%s-%d.png", slugify(prefix), stamp, i+1))
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return nil, fmt.Errorf("writing image: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// renderGallery lays saved image paths out as markdown for the content
// view. The terminal cannot show the images; the student opens the files.
func renderGallery(title string, paths []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nSaved to:\n", title)
	for _, p := range paths {
		fmt.Fprintf(&b, "\n- `%s`", p)
	}
	b.WriteString("\n")
	return b.String()
}

// slugify turns free text into a safe filename fragment.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
