package main

import "log/slog"

// Step records the table shape after one filtering stage.
type Step struct {
	Name string
	Rows int
	Cols int
}

// Drop is one record left out of a stage, with the reason.
type Drop struct {
	Stage  string
	Code   string
	Reason string
}

// Diagnostics is returned next to the result of every stage instead of
// printing while computing. Nothing in it is fatal.
type Diagnostics struct {
	Steps []Step
	Drops []Drop
}

func (d *Diagnostics) AddStep(name string, t *Table) {
	rows, cols := t.Shape()
	d.Steps = append(d.Steps, Step{Name: name, Rows: rows, Cols: cols})
}

func (d *Diagnostics) AddDrop(stage, code, reason string) {
	d.Drops = append(d.Drops, Drop{Stage: stage, Code: code, Reason: reason})
}

// Dropped lists the codes dropped at stage, in order.
func (d *Diagnostics) Dropped(stage string) []string {
	var codes []string
	for _, drop := range d.Drops {
		if drop.Stage == stage {
			codes = append(codes, drop.Code)
		}
	}
	return codes
}

func (d *Diagnostics) Step(name string) (Step, bool) {
	for _, step := range d.Steps {
		if step.Name == name {
			return step, true
		}
	}
	return Step{}, false
}

func (d *Diagnostics) Log() {
	if d == nil {
		return
	}
	for _, step := range d.Steps {
		slog.Info("step", "name", step.Name, "rows", step.Rows, "cols", step.Cols)
	}
	for _, drop := range d.Drops {
		slog.Warn("drop", "stage", drop.Stage, "code", drop.Code, "reason", drop.Reason)
	}
}
