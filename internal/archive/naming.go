package archive

import (
	"path"
	"sort"
	"strings"
	"time"

	"github.com/camdash/camdash/internal/content"
)

const (
	clipTimeLayout   = "20060102T150405"
	folderDateLayout = "2006-01-02"
)

// Clip is the parsed form of a clip file name "YYYYMMDDTHHMMSS-camera.ext".
type Clip struct {
	Time   time.Time
	Camera string
}

// ParseClipName parses a clip file name.
func ParseClipName(name string) (Clip, bool) {
	stem := strings.TrimSuffix(name, path.Ext(name))
	stamp, camera, ok := strings.Cut(stem, "-")
	if !ok || camera == "" {
		return Clip{}, false
	}
	t, err := time.Parse(clipTimeLayout, stamp)
	if err != nil {
		return Clip{}, false
	}
	return Clip{Time: t, Camera: camera}, true
}

// ClipLabel renders "camera at HH:MM:SS", or the raw name when it does not
// follow the clip naming scheme.
func ClipLabel(name string) string {
	c, ok := ParseClipName(name)
	if !ok {
		return name
	}
	return c.Camera + " at " + c.Time.Format("15:04:05")
}

// ParseFolderDate parses a "YYYY-MM-DD" folder name.
func ParseFolderDate(name string) (time.Time, bool) {
	t, err := time.Parse(folderDateLayout, name)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// clipTime and folderTime return the zero time on parse failure so unparsable
// names sort last in descending order.
func clipTime(name string) time.Time {
	c, _ := ParseClipName(name)
	return c.Time
}

func folderTime(name string) time.Time {
	t, _ := ParseFolderDate(name)
	return t
}

// SortFoldersByDate orders folders most recent first. Ties keep name order.
func SortFoldersByDate(entries []content.Entry) {
	sortDescending(entries, folderTime)
}

// SortClipsByTime orders clips most recent first. Ties keep name order.
func SortClipsByTime(entries []content.Entry) {
	sortDescending(entries, clipTime)
}

func sortDescending(entries []content.Entry, key func(string) time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, tj := key(entries[i].Name), key(entries[j].Name)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return entries[i].Name < entries[j].Name
	})
}
