package remover

import (
	"github.com/shadcn-remover/shadcn-remover/internal/component"
)

// Report summarises a single run.
type Report struct {
	RunID     string   `json:"runId" yaml:"runId"`
	DryRun    bool     `json:"dryRun" yaml:"dryRun"`
	Outcomes  []Result `json:"outcomes" yaml:"outcomes"`
	Succeeded int      `json:"succeeded" yaml:"succeeded"`
	Failed    int      `json:"failed" yaml:"failed"`
}

// Result is the serializable form of a component.Outcome.
type Result struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r *Report) add(o component.Outcome) {
	res := Result{
		Name:   o.Name,
		Status: string(o.Status),
		Kind:   string(o.Kind),
		Path:   o.Path,
	}
	if o.Err != nil {
		res.Error = o.Err.Error()
	}
	r.Outcomes = append(r.Outcomes, res)

	if o.Status.Succeeded() {
		r.Succeeded++
	} else {
		r.Failed++
	}
}
