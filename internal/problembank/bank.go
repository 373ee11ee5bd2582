// Package problembank holds the practice problems served by the tutor.
//
// A bank is loaded once from a JSON array or YAML sequence of records and is
// read-only afterwards. Loading is all-or-nothing: a single bad record
// rejects the whole file.
package problembank

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bank is an ordered, immutable collection of problems.
type Bank struct {
	problems []Problem
}

// New returns a bank over a copy of problems.
func New(problems []Problem) *Bank {
	return &Bank{problems: append([]Problem(nil), problems...)}
}

// Empty returns a bank with no problems.
func Empty() *Bank { return &Bank{} }

// Load reads a bank from path. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON. Every record is validated; the first
// invalid record fails the load.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem bank: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses raw bank data. ext selects the format as in Load.
func Decode(data []byte, ext string) (*Bank, error) {
	var problems []Problem
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &problems); err != nil {
			return nil, fmt.Errorf("decode problem bank yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &problems); err != nil {
			return nil, fmt.Errorf("decode problem bank json: %w", err)
		}
	}
	for i, p := range problems {
		if verr := Validate(i, p); verr != nil {
			return nil, verr
		}
	}
	return &Bank{problems: problems}, nil
}

// Len returns the number of problems.
func (b *Bank) Len() int { return len(b.problems) }

// All returns a copy of every problem in file order.
func (b *Bank) All() []Problem {
	return append([]Problem(nil), b.problems...)
}

// Filter returns the problems tagged d, in file order.
func (b *Bank) Filter(d Difficulty) []Problem {
	var out []Problem
	for _, p := range b.problems {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

// Counts returns the number of problems per difficulty.
func (b *Bank) Counts() map[Difficulty]int {
	counts := make(map[Difficulty]int, len(Difficulties))
	for _, p := range b.problems {
		counts[p.Difficulty]++
	}
	return counts
}

// Pick returns a problem tagged d chosen uniformly with rng, or the
// fallback problem when none is tagged d.
func (b *Bank) Pick(d Difficulty, rng *rand.Rand) Problem {
	candidates := b.Filter(d)
	if len(candidates) == 0 {
		return Fallback(d)
	}
	return candidates[rng.IntN(len(candidates))]
}
