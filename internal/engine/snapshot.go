package engine

import (
	"encoding/json"
	"fmt"
	"math"
)

// CategoryTotal is a derived per-category result. It is recomputed on demand
// from the answer store, never cached independently of it.
type CategoryTotal struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage int     `json:"percentage"`
}

// Snapshot is the sole contract handed to the presentation layer and to the
// external cache. Its JSON shape {total, level, categoryData} is also the
// deep-link serialization format and must round-trip without loss.
type Snapshot struct {
	Total        float64         `json:"total"`
	Level        string          `json:"level"`
	CategoryData []CategoryTotal `json:"categoryData"`
}

// Encode serializes the snapshot to its canonical JSON text form.
func (s Snapshot) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSnapshot parses the canonical JSON text form back into a Snapshot.
func DecodeSnapshot(text string) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Validate rejects snapshots whose numbers cannot have come from the scoring
// engine: the total and every category value must be finite and non-negative.
// Boundary callers run it on externally supplied payloads before trusting
// them.
func (s Snapshot) Validate() error {
	if !finiteNonNegative(s.Total) {
		return fmt.Errorf("invalid snapshot total %v", s.Total)
	}
	for _, ct := range s.CategoryData {
		if !finiteNonNegative(ct.Value) {
			return fmt.Errorf("invalid emissions value %v for category %q", ct.Value, ct.Name)
		}
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
