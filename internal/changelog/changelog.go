// Package changelog parses the embedded CHANGELOG.md for the "What's New"
// modal.
package changelog

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Change is one bullet, tagged with the section it appeared under
// ("Added", "Fixed", ...). Section is empty for bullets outside a section.
type Change struct {
	Section string
	Text    string
}

// Entry is one released version.
type Entry struct {
	Version string
	Date    string
	Changes []Change
}

var (
	// "## v0.0.12 (2026-01-08)" or "## 0.0.12"
	versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+(?:-[0-9A-Za-z.]+)?)(?:\s+\(([^)]+)\))?`)
	sectionRegex = regexp.MustCompile(`^###\s+(.+)$`)
)

// Parse extracts entries from markdown content, newest first as written.
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry
	section := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if m := versionRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{Version: m[1], Date: m[2]}
			section = ""
			continue
		}
		if current == nil {
			continue
		}
		if m := sectionRegex.FindStringSubmatch(line); m != nil {
			section = strings.TrimSpace(m[1])
			continue
		}
		if text, ok := bullet(line); ok {
			current.Changes = append(current.Changes, Change{Section: section, Text: text})
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

func bullet(line string) (string, bool) {
	for _, prefix := range []string{"- ", "* "} {
		if strings.HasPrefix(line, prefix) {
			text := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			return text, text != ""
		}
	}
	return "", false
}

// Since returns the entries newer than lastSeen. An empty lastSeen returns
// nothing: first runs get the welcome tour instead.
func Since(lastSeen string, entries []Entry) []Entry {
	if lastSeen == "" {
		return nil
	}
	var out []Entry
	for _, e := range entries {
		if CompareVersions(e.Version, lastSeen) > 0 {
			out = append(out, e)
		}
	}
	return out
}

// CompareVersions compares two semantic versions, returning -1, 0 or 1.
// A pre-release sorts before its release ("1.0.0-rc.1" < "1.0.0").
// Anything that isn't a version (e.g. "dev") sorts after every release.
func CompareVersions(a, b string) int {
	av, apre, aok := parseVersion(a)
	bv, bpre, bok := parseVersion(b)
	switch {
	case !aok && !bok:
		return strings.Compare(a, b)
	case !aok:
		return 1
	case !bok:
		return -1
	}

	for i := range av {
		if av[i] != bv[i] {
			if av[i] < bv[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case apre == bpre:
		return 0
	case apre == "":
		return 1
	case bpre == "":
		return -1
	}
	return strings.Compare(apre, bpre)
}

func parseVersion(v string) ([3]int, string, bool) {
	var out [3]int
	v = strings.TrimPrefix(v, "v")
	core, pre, _ := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return out, "", false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, "", false
		}
		out[i] = n
	}
	return out, pre, true
}
