package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed data/pond_shapes.yaml
var defaultShapesDoc []byte

//go:embed data/fish_species.yaml
var defaultFishDoc []byte

// DefaultShapeCatalog parses the shape catalog shipped with the binary.
func DefaultShapeCatalog() (*ShapeCatalog, error) {
	shapes, err := ParseShapeCatalog(defaultShapesDoc)
	if err != nil {
		return nil, fmt.Errorf("embedded shape catalog: %w", err)
	}
	return shapes, nil
}

// DefaultFishCatalog parses the fish catalog shipped with the binary.
func DefaultFishCatalog() (*FishCatalog, error) {
	fish, err := ParseFishCatalog(defaultFishDoc)
	if err != nil {
		return nil, fmt.Errorf("embedded fish catalog: %w", err)
	}
	return fish, nil
}
