// Package camera loads the list of live camera streams shown on the grid.
package camera

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxSources is the number of cells on the camera grid.
const MaxSources = 5

// ErrNoCameras is returned when a camera list yields no usable entries.
var ErrNoCameras = errors.New("no cameras configured")

// Source is one named live stream.
type Source struct {
	Name string
	URI  string
}

// Parse reads "name,uri" lines. The name ends at the first comma; blank and
// comma-less lines are skipped. At most MaxSources entries are returned.
func Parse(r io.Reader) ([]Source, error) {
	var sources []Source
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, uri, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		sources = append(sources, Source{Name: name, URI: uri})
		if len(sources) == MaxSources {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read camera list: %w", err)
	}
	return sources, nil
}

// Load reads the camera list file at path. A list without usable entries
// is an error.
func Load(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open camera list: %w", err)
	}
	defer f.Close()
	sources, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCameras)
	}
	return sources, nil
}

// Label is the display name of a source, falling back to its position.
func (s Source) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Camera %d", index+1)
}
