package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bidiguard/bidiguard/internal/git"
	"github.com/bidiguard/bidiguard/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool         `json:"tool"`
	Results    []sarifResult     `json:"results"`
	Properties map[string]string `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "error"
	case types.SevMed:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes hits as SARIF 2.1.0. Repo metadata, when available, is
// attached as run properties so CI dashboards can group results.
func WriteSARIF(w io.Writer, hits []types.Hit, version string, md git.Metadata) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: "bidiguard", Version: version}},
	}
	if md.Repo != "" || md.Commit != "" || md.Branch != "" {
		run.Properties = map[string]string{}
		if md.Repo != "" {
			run.Properties["repo"] = md.Repo
		}
		if md.Commit != "" {
			run.Properties["commit"] = md.Commit
		}
		if md.Branch != "" {
			run.Properties["branch"] = md.Branch
		}
	}
	for _, h := range hits {
		text := fmt.Sprintf("%s (%s) at %s:%d:%d", h.CodepointLabel(), h.Name, h.Path, h.Line, h.Column)
		run.Results = append(run.Results, sarifResult{
			RuleID:  h.Rule,
			Level:   sevToLevel(h.Severity),
			Message: sarifMessage{Text: text},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: h.Path},
					Region:           sarifRegion{StartLine: h.Line, StartColumn: h.Column},
				},
			}},
		})
	}
	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
