package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/OP439/excalidraw/pkg/elements"
	"github.com/OP439/excalidraw/pkg/fractional"
	"github.com/OP439/excalidraw/pkg/reconcile"
)

// Tabular is implemented by values with their own table rendering.
type Tabular interface {
	TableData(wide bool) Data
}

// Write formats data to w. Table formats use TableData when data is Tabular.
func Write(w io.Writer, format Format, data any) error {
	formatter := NewFormatter(format)
	if t, ok := data.(Tabular); ok {
		switch format {
		case FormatTable, FormatWide, "":
			return formatter.Format(w, t.TableData(format == FormatWide))
		}
	}
	return formatter.Format(w, data)
}

// Report summarizes a reconciliation run.
type Report struct {
	ID         string         `json:"id" yaml:"id"`
	Elements   int            `json:"elements" yaml:"elements"`
	Batches    int            `json:"batches" yaml:"batches"`
	Added      []string       `json:"added" yaml:"added"`
	Updated    []string       `json:"updated" yaml:"updated"`
	Kept       []string       `json:"kept" yaml:"kept"`
	Reindexed  []string       `json:"reindexed" yaml:"reindexed"`
	Duplicates int            `json:"duplicates" yaml:"duplicates"`
	Repaired   bool           `json:"repaired" yaml:"repaired"`
	Reasons    map[string]int `json:"reasons" yaml:"reasons"`
	DurationMs int64          `json:"duration_ms" yaml:"duration_ms"`
	Summary    string         `json:"summary" yaml:"summary"`
}

// NewReport builds a Report from result.
func NewReport(result *reconcile.Result) Report {
	stats := result.Metadata.Stats
	r := Report{
		ID:         result.Metadata.ID,
		Elements:   result.Elements.Len(),
		Batches:    stats.Batches,
		Added:      []string{},
		Updated:    []string{},
		Kept:       []string{},
		Reindexed:  []string{},
		Duplicates: stats.Duplicates,
		Repaired:   result.Repaired(),
		Reasons:    make(map[string]int, len(stats.Reasons)),
		DurationMs: stats.TotalTimeMs,
		Summary:    result.Summary(),
	}
	if cs := result.Changeset; cs != nil {
		r.Added = cs.Added
		r.Updated = cs.Updated
		r.Kept = cs.Kept
		r.Reindexed = cs.Reindexed
	}
	for reason, n := range stats.Reasons {
		if n > 0 {
			r.Reasons[reason.String()] = n
		}
	}
	return r
}

// TableData implements Tabular. Wide tables add one row per decision reason.
func (r Report) TableData(wide bool) Data {
	rows := [][]string{
		{"Elements", strconv.Itoa(r.Elements)},
		{"Batches", strconv.Itoa(r.Batches)},
		{"Added", list(r.Added)},
		{"Updated", list(r.Updated)},
		{"Kept", list(r.Kept)},
		{"Reindexed", list(r.Reindexed)},
		{"Duplicates", strconv.Itoa(r.Duplicates)},
		{"Repaired", strconv.FormatBool(r.Repaired)},
	}
	if wide {
		reasons := make([]string, 0, len(r.Reasons))
		for reason := range r.Reasons {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			rows = append(rows, []string{"Reason " + reason, strconv.Itoa(r.Reasons[reason])})
		}
		rows = append(rows, []string{"ID", r.ID}, []string{"Duration", fmt.Sprintf("%dms", r.DurationMs)})
	}
	return Data{
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// InvalidKey is an element whose order key does not validate.
type InvalidKey struct {
	Position int    `json:"position" yaml:"position"`
	ID       string `json:"id" yaml:"id"`
	Index    string `json:"index" yaml:"index"`
	Problem  string `json:"problem" yaml:"problem"`
}

// Validation is the outcome of checking a snapshot's order keys.
type Validation struct {
	File     string       `json:"file" yaml:"file"`
	Valid    bool         `json:"valid" yaml:"valid"`
	Elements int          `json:"elements" yaml:"elements"`
	Invalid  []InvalidKey `json:"invalid" yaml:"invalid"`
}

// NewValidation checks the order keys of seq as given.
func NewValidation(file string, seq []elements.Element) Validation {
	v := Validation{
		File:     file,
		Elements: len(seq),
		Invalid:  []InvalidKey{},
	}
	for _, bad := range fractional.Check(seq) {
		v.Invalid = append(v.Invalid, InvalidKey{
			Position: bad.Position,
			ID:       bad.ID,
			Index:    bad.Index,
			Problem:  string(bad.Problem),
		})
	}
	v.Valid = len(v.Invalid) == 0
	return v
}

// IDs returns the ids of the invalid elements.
func (v Validation) IDs() []string {
	ids := make([]string, len(v.Invalid))
	for i, k := range v.Invalid {
		ids[i] = k.ID
	}
	return ids
}

// TableData implements Tabular.
func (v Validation) TableData(bool) Data {
	rows := make([][]string, 0, len(v.Invalid))
	for _, k := range v.Invalid {
		rows = append(rows, []string{strconv.Itoa(k.Position), k.ID, k.Index, k.Problem})
	}
	return Data{
		Headers:         []string{"Position", "ID", "Index", "Problem"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
}

func list(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}
