package domain

import (
	"fmt"
	"time"
)

// Canonical attachment names are 19 digits plus the original extension:
// 14 digits of local datetime, 3 digits of milliseconds, and a 2-digit
// disambiguator. Sorting canonical names sorts by assignment time.
const (
	canonicalDigits    = 19
	disambiguatorBase  = 10
	disambiguatorLimit = 99
	stampLayout        = "20060102150405"
)

// IsCanonicalName reports whether a basename (with or without extension)
// already carries a canonical attachment name. Any 19-digit stem qualifies,
// which is what makes repeated runs idempotent.
func IsCanonicalName(base string) bool {
	stem := base
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			stem = base[:i]
			break
		}
	}
	if len(stem) != canonicalDigits {
		return false
	}
	for i := 0; i < len(stem); i++ {
		if stem[i] < '0' || stem[i] > '9' {
			return false
		}
	}
	return true
}

// RenameMapping records one applied attachment rename.
type RenameMapping struct {
	OriginalPath string   `json:"original_path"`
	NewPath      string   `json:"new_path"`
	Category     Category `json:"category,omitempty"`
	Token        string   `json:"timestamp_token,omitempty"`
}

// NameGenerator allocates canonical attachment names that are unique within
// a run, even when many names are generated in the same millisecond.
type NameGenerator struct {
	now  func() time.Time
	used map[string]bool
}

// NewNameGenerator returns a generator backed by the wall clock.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{now: time.Now, used: make(map[string]bool)}
}

// NewNameGeneratorAt returns a generator with an injected clock, for tests.
func NewNameGeneratorAt(now func() time.Time) *NameGenerator {
	return &NameGenerator{now: now, used: make(map[string]bool)}
}

// Next returns a canonical filename for the given extension. exists is
// consulted with the candidate basename to rule out collisions with files
// already present in the target directory; the generator additionally never
// reissues a name it handed out earlier in the run.
func (g *NameGenerator) Next(ext string, exists func(name string) bool) (name, token string) {
	for {
		t := g.now()
		stamp := t.Format(stampLayout) + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
		for d := disambiguatorBase; d <= disambiguatorLimit; d++ {
			tok := fmt.Sprintf("%s%02d", stamp, d)
			candidate := tok + ext
			if g.used[candidate] {
				continue
			}
			if exists != nil && exists(candidate) {
				continue
			}
			g.used[candidate] = true
			return candidate, tok
		}
		// Every disambiguator for this millisecond is taken; wait for the
		// clock to move on.
	}
}
