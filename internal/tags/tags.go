// Package tags reads display metadata from audio files.
package tags

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// Info holds track display information.
type Info struct {
	Title  string
	Artist string
}

// Read returns ID3v2 title and artist when the file carries them, falling
// back to the filename without extension. It never fails; untagged formats
// simply get the fallback.
func Read(path string) Info {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err == nil {
		defer tag.Close()

		info := Info{
			Title:  strings.TrimSpace(tag.Title()),
			Artist: strings.TrimSpace(tag.Artist()),
		}
		if info.Title != "" {
			return info
		}
	}

	base := filepath.Base(path)

	return Info{Title: strings.TrimSuffix(base, filepath.Ext(base))}
}
