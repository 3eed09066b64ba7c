package core

import (
	"encoding/json"
	"io"
)

// MarshalHits pretty-prints hits as JSON for humans or pipelines.
func MarshalHits(w io.Writer, hits []Hit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(hits)
}

// UnmarshalHits decodes hits JSON, useful for ingestion tests.
func UnmarshalHits(r io.Reader) ([]Hit, error) {
	var hs []Hit
	if err := json.NewDecoder(r).Decode(&hs); err != nil {
		return nil, err
	}
	return hs, nil
}
