package catalog

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Document Types
// =============================================================================

// fishEntry mirrors one entry of the fish_species block in the YAML document.
type fishEntry struct {
	Name             string   `yaml:"name"`
	AdultLengthCM    *float64 `yaml:"adult_length_cm"`
	BioloadFactor    *float64 `yaml:"bioload_factor"`
	MinLitersPerFish *float64 `yaml:"min_liters_per_fish"`
}

// fishDocument mirrors the full fish catalog document.
type fishDocument struct {
	FishSpecies map[string]fishEntry `yaml:"fish_species"`
}

// =============================================================================
// FishCatalog
// =============================================================================

// FishCatalog is the immutable table of fish species, loaded once at startup
// and read-only for the process lifetime.
type FishCatalog struct {
	species map[string]FishSpecies
}

// Get returns the species for a key. Lookup is case-insensitive.
func (c *FishCatalog) Get(key string) (FishSpecies, error) {
	species, ok := c.species[strings.ToLower(key)]
	if !ok {
		return FishSpecies{}, fmt.Errorf("%w: %q", ErrInvalidSpecies, key)
	}
	return species, nil
}

// Exists reports whether a species key is present in the catalog.
func (c *FishCatalog) Exists(key string) bool {
	_, ok := c.species[strings.ToLower(key)]
	return ok
}

// Keys returns all species keys in alphabetical order.
func (c *FishCatalog) Keys() []string {
	keys := make([]string, 0, len(c.species))
	for k := range c.species {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every species keyed by catalog key.
func (c *FishCatalog) All() map[string]FishSpecies {
	out := make(map[string]FishSpecies, len(c.species))
	for k, v := range c.species {
		out[k] = v
	}
	return out
}

// Len returns the number of species in the catalog.
func (c *FishCatalog) Len() int {
	return len(c.species)
}

// =============================================================================
// Parsing
// =============================================================================

// ParseFishCatalog parses and validates a fish catalog document. Every entry
// must carry a name and positive numeric attributes; a malformed entry fails
// the whole parse with an error wrapping ErrInvalidCatalogData.
func ParseFishCatalog(doc []byte) (*FishCatalog, error) {
	if len(strings.TrimSpace(string(doc))) == 0 {
		return nil, ErrEmptyInput
	}

	var parsed fishDocument
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, NewParseError("", "failed to parse fish catalog", ErrInvalidYAML)
	}

	if len(parsed.FishSpecies) == 0 {
		return nil, ErrNoSpecies
	}

	species := make(map[string]FishSpecies, len(parsed.FishSpecies))
	for key, entry := range parsed.FishSpecies {
		fish, err := buildSpecies(strings.ToLower(key), entry)
		if err != nil {
			return nil, err
		}
		species[fish.Key] = fish
	}

	return &FishCatalog{species: species}, nil
}

// buildSpecies validates one catalog entry and converts it to a FishSpecies.
func buildSpecies(key string, entry fishEntry) (FishSpecies, error) {
	field := "fish_species." + key

	if entry.Name == "" {
		return FishSpecies{}, NewParseError(field, "missing required field 'name'", ErrInvalidCatalogData)
	}

	numeric := []struct {
		name  string
		value *float64
	}{
		{"adult_length_cm", entry.AdultLengthCM},
		{"bioload_factor", entry.BioloadFactor},
		{"min_liters_per_fish", entry.MinLitersPerFish},
	}
	for _, f := range numeric {
		if f.value == nil {
			return FishSpecies{}, NewParseError(field,
				fmt.Sprintf("missing required field '%s'", f.name), ErrInvalidCatalogData)
		}
		if *f.value <= 0 {
			return FishSpecies{}, NewParseError(field,
				fmt.Sprintf("%s must be positive, got %v", f.name, *f.value), ErrInvalidCatalogData)
		}
	}

	return FishSpecies{
		Key:              key,
		Name:             entry.Name,
		AdultLengthCM:    *entry.AdultLengthCM,
		BioloadFactor:    *entry.BioloadFactor,
		MinLitersPerFish: *entry.MinLitersPerFish,
	}, nil
}
