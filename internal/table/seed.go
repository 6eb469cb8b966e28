package table

import (
	"bufio"
	"io"
	"os"
	"regexp"
)

// Seed files carry one entry per line in the legacy table-literal shape:
//
//	["to maximum life"] = "explicit.stat_3299347043",
//
// The phrase is the first quoted group, the id follows the equals sign. Lines
// that do not match are skipped.
var seedLine = regexp.MustCompile(`\["(.+?)"\]\s*=\s*"(.+?)"`)

// LoadSeedFile augments the builder from a seed file on disk. A missing or
// unreadable file is reported as a recoverable *ConfigurationError: the
// entries already in the builder stay usable. Returns the number of entries
// added.
func (b *Builder) LoadSeedFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &ConfigurationError{Reason: "open seed file " + path, Err: err}
	}
	defer f.Close()
	return b.loadSeed(f), nil
}

// loadSeed reads seed lines from r, silently skipping malformed ones
func (b *Builder) loadSeed(r io.Reader) int {
	added := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := seedLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		b.Set(m[1], m[2])
		added++
	}
	return added
}
