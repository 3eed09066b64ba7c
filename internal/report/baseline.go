package report

import (
	"encoding/json"
	"os"

	"github.com/bidiguard/bidiguard/internal/types"
)

// Baseline records accepted hits so known, reviewed occurrences stop
// failing the build. The key includes the context so a file edit near the
// hit re-surfaces it for review.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(f, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, hits []types.Hit) error {
	b := Baseline{Items: map[string]bool{}}
	for _, h := range hits {
		b.Items[Key(h)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0644)
}

func FilterNewHits(hits []types.Hit, base Baseline) []types.Hit {
	var out []types.Hit
	for _, h := range hits {
		if !base.Items[Key(h)] {
			out = append(out, h)
		}
	}
	return out
}

// Key identifies a hit for baseline purposes. Line numbers are excluded on
// purpose: unrelated edits above a hit must not invalidate the baseline.
func Key(h types.Hit) string {
	return h.Path + "|" + h.Rule + "|" + h.CodepointLabel() + "|" + h.Context
}
