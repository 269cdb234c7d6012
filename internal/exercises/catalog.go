package exercises

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

//go:embed data/exercises.json
var bundledCatalog []byte

// LoadCatalog reads the bundled exercise reference dataset. An empty path
// falls back to the catalog embedded in the binary.
func LoadCatalog(path string) ([]Exercise, error) {
	data := bundledCatalog
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read exercises data file: %w", err)
		}
		data = fileData
	}

	var catalog []Exercise
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("unmarshal exercises data: %w", err)
	}

	for i, e := range catalog {
		if !e.MuscleGroup.IsValid() {
			return nil, fmt.Errorf("exercise %q: unknown muscle group %q", e.Name, e.MuscleGroup)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("exercise at index %d: empty name", i)
		}
	}

	log.Debugf("loaded %d catalog exercises", len(catalog))

	return catalog, nil
}
