package nutrition

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed data/staples.json
var bundledStaplesJSON []byte

type stapleFood struct {
	Name     string   `json:"name"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
}

// Staples is the bundled read-only staple foods dataset.
// Loaded once at startup, safe for concurrent reads.
type Staples struct {
	foods []FoodItem
}

// LoadStaples reads the staples dataset, from path if given,
// otherwise from the embedded copy.
func LoadStaples(path string) (*Staples, error) {
	raw := bundledStaplesJSON
	if path != "" {
		fileBytes, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read staples file %s: %w", path, err)
		}
		raw = fileBytes
	}

	var staples []stapleFood
	if err := json.Unmarshal(raw, &staples); err != nil {
		return nil, fmt.Errorf("unmarshal staples data: %w", err)
	}
	if len(staples) == 0 {
		return nil, fmt.Errorf("staples dataset is empty")
	}

	foods := make([]FoodItem, 0, len(staples))
	for i, s := range staples {
		if s.Name == "" {
			return nil, fmt.Errorf("staple %d has no name", i)
		}
		foods = append(foods, FoodItem{
			Name:       s.Name,
			Calories:   s.Calories,
			Protein:    s.Protein,
			Carbs:      s.Carbs,
			Fat:        s.Fat,
			Fiber:      s.Fiber,
			Sugar:      s.Sugar,
			Provenance: ProvenanceBundled,
		})
	}

	return &Staples{foods: foods}, nil
}

// Search returns staples whose name contains the query,
// case-insensitive, capped at limit.
func (s *Staples) Search(query string, limit int) []FoodItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []FoodItem
	for _, f := range s.foods {
		if !strings.Contains(strings.ToLower(f.Name), query) {
			continue
		}
		matches = append(matches, f)
		if len(matches) >= limit {
			break
		}
	}
	return matches
}

func (s *Staples) Len() int {
	return len(s.foods)
}
