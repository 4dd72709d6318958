// Package timezones provides helpers for coercing, converting and probing
// time zones.
package timezones

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fallbackZones is used when no platform tzdata directory can be found.
var fallbackZones = []string{"UTC", "US/Eastern", "US/Pacific", "Europe/London"}

// zoneinfoDirs lists the usual platform tzdata locations.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

var (
	currentMu sync.RWMutex
	current   = time.Local
)

// Current returns the process-wide timezone used by helpers that take no
// explicit location. It defaults to the system local zone.
func Current() *time.Location {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide timezone.
func SetCurrent(tz any) error {
	loc, err := Coerce(tz)
	if err != nil {
		return err
	}
	currentMu.Lock()
	current = loc
	currentMu.Unlock()
	return nil
}

// Coerce converts user input into a *time.Location. Accepted inputs are a
// *time.Location, an IANA zone name, or a simple offset like "UTC+2".
func Coerce(tz any) (*time.Location, error) {
	switch v := tz.(type) {
	case *time.Location:
		if v == nil {
			return nil, fmt.Errorf("nil location")
		}
		return v, nil
	case string:
		return coerceName(v)
	}
	return nil, fmt.Errorf("unsupported timezone type %T", tz)
}

func coerceName(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	upper := strings.ToUpper(name)
	if strings.HasPrefix(upper, "UTC") && len(name) > 3 {
		hours, err := strconv.Atoi(name[3:])
		if err != nil {
			return nil, fmt.Errorf("invalid timezone offset %q", name)
		}
		return time.FixedZone(upper, hours*3600), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// Ensure converts t into the given zone. A nil tz means UTC.
func Ensure(t time.Time, tz any) (time.Time, error) {
	loc := time.UTC
	if tz != nil {
		var err error
		if loc, err = Coerce(tz); err != nil {
			return time.Time{}, err
		}
	}
	return t.In(loc), nil
}

// Convert converts a time.Time or an RFC 3339 string between zones. A
// string without zone information is interpreted in the source zone
// (default UTC) before conversion.
func Convert(value any, from, to any) (time.Time, error) {
	target := time.UTC
	if to != nil {
		var err error
		if target, err = Coerce(to); err != nil {
			return time.Time{}, err
		}
	}

	source := time.UTC
	if from != nil {
		var err error
		if source, err = Coerce(from); err != nil {
			return time.Time{}, err
		}
	}

	switch v := value.(type) {
	case time.Time:
		return v.In(target), nil
	case string:
		t, err := parseTimestamp(v, source)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(target), nil
	}
	return time.Time{}, fmt.Errorf("unsupported datetime type %T", value)
}

// parseTimestamp accepts RFC 3339 and the common zone-less ISO forms.
func parseTimestamp(s string, naive *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, naive); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime string %q", s)
}

// Offset returns the UTC offset of tz at the given instant. A zero
// instant means now.
func Offset(tz any, at time.Time) (time.Duration, error) {
	loc, err := Coerce(tz)
	if err != nil {
		return 0, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	_, seconds := at.In(loc).Zone()
	return time.Duration(seconds) * time.Second, nil
}

// IsDST reports whether tz observes daylight saving time at the given
// instant. A zero instant means now.
func IsDST(tz any, at time.Time) (bool, error) {
	loc, err := Coerce(tz)
	if err != nil {
		return false, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	return at.In(loc).IsDST(), nil
}

// ListOptions filter the zones returned by List.
type ListOptions struct {
	// Region keeps only zone names containing this substring.
	Region string
	// Offset, when non-nil, keeps only zones at this whole-hour UTC offset.
	Offset *int
	// DSTOnly keeps only zones currently observing DST.
	DSTOnly bool
}

// List returns available IANA zone names matching the options, sorted. It
// enumerates the platform tzdata directory and falls back to a small
// builtin list when none is present. Unfiltered queries always include
// UTC.
func List(opts ListOptions) []string {
	zones := availableZones()

	var matched []string
	for _, zone := range zones {
		if !matchZone(zone, opts) {
			continue
		}
		matched = append(matched, zone)
	}
	sort.Strings(matched)

	if opts.Offset == nil && !opts.DSTOnly && (opts.Region == "" || strings.Contains("UTC", opts.Region)) {
		if !containsString(matched, "UTC") {
			matched = append(matched, "UTC")
			sort.Strings(matched)
		}
	}
	return matched
}

func matchZone(zone string, opts ListOptions) bool {
	if opts.Region != "" && !strings.Contains(zone, opts.Region) {
		return false
	}
	if opts.Offset != nil {
		off, err := Offset(zone, time.Time{})
		if err != nil || off != time.Duration(*opts.Offset)*time.Hour {
			return false
		}
	}
	if opts.DSTOnly {
		dst, err := IsDST(zone, time.Time{})
		if err != nil || !dst {
			return false
		}
	}
	return true
}

func availableZones() []string {
	for _, dir := range zoneinfoDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		zones := walkZoneDir(dir)
		if len(zones) > 0 {
			return zones
		}
	}
	return append([]string(nil), fallbackZones...)
}

func walkZoneDir(root string) []string {
	var zones []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			// tzdata ships metadata directories like posix/ and right/
			// that duplicate the zone tree.
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || strings.ContainsAny(name, ". ") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		// Zone names start with an uppercase component (Area/Location).
		if rel == "" || rel[0] < 'A' || rel[0] > 'Z' {
			return nil
		}
		zones = append(zones, filepath.ToSlash(rel))
		return nil
	})
	return zones
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
