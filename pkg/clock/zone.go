package clock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	// Embedded IANA database so zone resolution works without host zoneinfo.
	_ "time/tzdata"
)

var (
	zoneMu sync.RWMutex
	zones  = map[string]*time.Location{}
)

// Host files consulted by LocalZoneName.
var (
	localtimePath = "/etc/localtime"
	timezonePath  = "/etc/timezone"
)

// LoadZone resolves an IANA zone identifier. Results are cached; locations
// are immutable so sharing them is safe. "Local" and the empty string are
// rejected because they do not name a zone.
func LoadZone(tz string) (*time.Location, error) {
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	zoneMu.RLock()
	loc, ok := zones[tz]
	zoneMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, tz, err)
	}

	zoneMu.Lock()
	zones[tz] = loc
	zoneMu.Unlock()
	return loc, nil
}

// ValidZone reports whether tz resolves.
func ValidZone(tz string) bool {
	_, err := LoadZone(tz)
	return err == nil
}

// LocalZoneName returns the IANA name of the viewer's zone. It consults
// $TZ, then the /etc/localtime symlink, then /etc/timezone (containers
// often copy localtime instead of linking it), and finally falls back to
// the abbreviation of the current local zone.
func LocalZoneName() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" && tz != "Local" {
		return tz
	}
	if target, err := os.Readlink(localtimePath); err == nil {
		if name := zoneFromPath(target); name != "" {
			return name
		}
	}
	if name := zoneFromFile(timezonePath); name != "" {
		return name
	}
	name, _ := time.Now().Zone()
	return name
}

// zoneFromFile reads a Debian-style timezone file: the zone name on the
// first non-comment line. Names that do not resolve are ignored.
func zoneFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if ValidZone(line) {
			return line
		}
		return ""
	}
	return ""
}

// zoneFromPath extracts "Area/City" from a zoneinfo file path.
func zoneFromPath(p string) string {
	p = filepath.ToSlash(p)
	const marker = "zoneinfo/"
	idx := strings.LastIndex(p, marker)
	if idx < 0 {
		return ""
	}
	return p[idx+len(marker):]
}
