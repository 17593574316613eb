// pkg/registry/seed.go
package registry

import (
	_ "embed"
	"encoding/json"
	"os"

	"activities-api/internal/models"

	apierrors "activities-api/internal/common/errors"
)

//go:embed seed.json
var embeddedSeed []byte

// ParseCatalog validates and decodes a raw catalog document.
func ParseCatalog(data []byte) (map[string]*models.Activity, error) {
	if err := validateCatalog(data); err != nil {
		return nil, err
	}

	var catalog map[string]*models.Activity
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, apierrors.NewCatalogInvalidError(err.Error())
	}

	// The schema does not express uniqueness inside one participant list;
	// check it here so a bad catalog fails at startup, not on first signup.
	for name, activity := range catalog {
		seen := make(map[string]bool, len(activity.Participants))
		for _, email := range activity.Participants {
			if seen[email] {
				return nil, apierrors.NewCatalogInvalidError(
					"duplicate participant " + email + " in " + name)
			}
			seen[email] = true
		}
	}

	return catalog, nil
}

// SeedCatalog returns the built-in activity catalog.
func SeedCatalog() (map[string]*models.Activity, error) {
	return ParseCatalog(embeddedSeed)
}

// LoadCatalog reads an external catalog document from path.
func LoadCatalog(path string) (map[string]*models.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}
