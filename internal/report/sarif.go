package report

import (
	"encoding/json"
	"io"
	"slices"

	"quill/internal/driver"
	"quill/internal/linting"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string     `json:"id"`
	ShortDescription *sarifText `json:"shortDescription,omitempty"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifText       `json:"message"`
	Locations []sarifLocation `json:"locations"`
	Fixes     []sarifFix      `json:"fixes,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysical `json:"physicalLocation"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
	CharOffset  uint32 `json:"charOffset"`
	CharLength  uint32 `json:"charLength"`
}

type sarifFix struct {
	Description     sarifText             `json:"description"`
	ArtifactChanges []sarifArtifactChange `json:"artifactChanges"`
}

type sarifArtifactChange struct {
	ArtifactLocation sarifArtifact      `json:"artifactLocation"`
	Replacements     []sarifReplacement `json:"replacements"`
}

type sarifReplacement struct {
	DeletedRegion   sarifRegion `json:"deletedRegion"`
	InsertedContent sarifText   `json:"insertedContent"`
}

func sarifLevel(p linting.Priority) string {
	switch {
	case p <= linting.PriorityHigh:
		return "error"
	case p <= linting.PriorityDefault:
		return "warning"
	}
	return "note"
}

// Sarif writes lints as a SARIF v2.1.0 log with a single run.
func Sarif(w io.Writer, run *driver.Run, meta SarifRunMeta) error {
	items, _ := collect(run, 0)

	ruleIDs := make([]string, 0, len(meta.Rules))
	for id := range meta.Rules {
		ruleIDs = append(ruleIDs, id)
	}
	for _, it := range items {
		if _, ok := meta.Rules[it.lint.Rule]; !ok && !slices.Contains(ruleIDs, it.lint.Rule) {
			ruleIDs = append(ruleIDs, it.lint.Rule)
		}
	}
	slices.Sort(ruleIDs)
	index := make(map[string]int, len(ruleIDs))
	rules := make([]sarifRule, len(ruleIDs))
	for i, id := range ruleIDs {
		index[id] = i
		rules[i] = sarifRule{ID: id}
		if desc := meta.Rules[id]; desc != "" {
			rules[i].ShortDescription = &sarifText{Text: desc}
		}
	}

	name := meta.ToolName
	if name == "" {
		name = "quill"
	}
	sr := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: name, Version: meta.ToolVersion, Rules: rules}},
		Results: make([]sarifResult, 0, len(items)),
	}
	if len(meta.InvocationArgs) > 0 {
		sr.Invocations = []sarifInvocation{{Arguments: meta.InvocationArgs, ExecutionSuccessful: !run.Failed()}}
	}

	for _, it := range items {
		l := it.lint
		uri := formatPath(it.file, run.FileSet, PathModeRelative)
		region := sarifRegionOf(it, l.Span.Start, l.Span.End)
		res := sarifResult{
			RuleID:    l.Rule,
			RuleIndex: index[l.Rule],
			Level:     sarifLevel(l.Priority),
			Message:   sarifText{Text: l.Message},
			Locations: []sarifLocation{{PhysicalLocation: sarifPhysical{ArtifactLocation: sarifArtifact{URI: uri}, Region: region}}},
		}
		for _, s := range l.Suggestions {
			at, text := s.Edit(l.Span)
			res.Fixes = append(res.Fixes, sarifFix{
				Description: sarifText{Text: s.String()},
				ArtifactChanges: []sarifArtifactChange{{
					ArtifactLocation: sarifArtifact{URI: uri},
					Replacements: []sarifReplacement{{
						DeletedRegion:   sarifRegionOf(it, at.Start, at.End),
						InsertedContent: sarifText{Text: text},
					}},
				}},
			})
		}
		sr.Results = append(sr.Results, res)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sarifLog{Version: sarifVersion, Schema: sarifSchema, Runs: []sarifRun{sr}})
}

func sarifRegionOf(it item, startOff, endOff uint32) sarifRegion {
	start, end := it.file.Resolve(spanOf(startOff, endOff))
	return sarifRegion{
		StartLine:   start.Line,
		StartColumn: start.Col,
		EndLine:     end.Line,
		EndColumn:   end.Col,
		CharOffset:  startOff,
		CharLength:  endOff - startOff,
	}
}
