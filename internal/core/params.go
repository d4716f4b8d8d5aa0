package core

import "strings"

// Parameter describes a single value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a frame was rendered with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by anything that can describe itself on
// the HUD.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Merge appends the groups of other snapshots to s.
func (s ParameterSnapshot) Merge(others ...ParameterSnapshot) ParameterSnapshot {
	out := ParameterSnapshot{Groups: append([]ParameterGroup(nil), s.Groups...)}
	for _, o := range others {
		out.Groups = append(out.Groups, o.Groups...)
	}
	return out
}

// Line flattens the snapshot into a single "label value" status line.
func (s ParameterSnapshot) Line() string {
	var parts []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}
