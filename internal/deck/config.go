package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// orderingFile is the on-disk YAML shape for a custom ordering:
//
//	suits:
//	  hearts: 0
//	  spades: 1
//	ranks:
//	  A: 1
//	  "2": 2
type orderingFile struct {
	Suits map[string]int `yaml:"suits"`
	Ranks map[string]int `yaml:"ranks"`
}

// LoadOrdering reads suit and rank priority tables from a YAML file.
// Both tables must be present and non-empty.
func LoadOrdering(path string) (Ordering, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ordering{}, fmt.Errorf("read ordering file: %w", err)
	}

	var f orderingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Ordering{}, fmt.Errorf("parse ordering file %s: %w", path, err)
	}

	suits := make(map[Suit]int, len(f.Suits))
	for s, p := range f.Suits {
		suits[Suit(s)] = p
	}
	ranks := make(map[Rank]int, len(f.Ranks))
	for r, p := range f.Ranks {
		ranks[Rank(r)] = p
	}

	o, err := NewOrdering(suits, ranks)
	if err != nil {
		return Ordering{}, fmt.Errorf("ordering file %s: %w", path, err)
	}
	return o, nil
}
