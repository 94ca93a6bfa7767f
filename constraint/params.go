package constraint

import (
	"sort"

	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// slotKind distinguishes what a Template slot feeds.
type slotKind int

const (
	slotPointX slotKind = iota
	slotPointY
	slotVariable
)

// slot names one scalar free parameter: either a floating point's X or
// Y coordinate, or a determined variable's value.
type slot struct {
	kind    slotKind
	pointID entity.ID
	varName string
}

// Template fixes the order of free parameters for one Solve call, so
// the same index in a parameter vector always names the same scalar
// across ExtractFreeParams/ApplyParams/Jacobian calls.
type Template struct {
	slots []slot
}

// Len reports the number of free parameters in tmpl.
func (tmpl Template) Len() int { return len(tmpl.slots) }

// ExtractFreeParams builds the parameter template and initial vector
// for s, per spec.md §4.5: every floating point contributes its x then
// y, followed by every determined variable's value. Points are ordered
// by id and variables by name for deterministic Jacobian row
// assignment across calls.
func ExtractFreeParams(s *entity.Store) (Template, []float64) {
	stats := s.Stats()
	tmpl := Template{slots: make([]slot, 0, 2*stats.FloatingPoints+stats.DeterminedVars)}
	vec := make([]float64, 0, 2*stats.FloatingPoints+stats.DeterminedVars)

	pointIDs := make([]entity.ID, 0, stats.FloatingPoints)
	for id, p := range s.Points {
		if p.IsFloating {
			pointIDs = append(pointIDs, id)
		}
	}
	sort.Slice(pointIDs, func(i, j int) bool { return pointIDs[i] < pointIDs[j] })
	for _, id := range pointIDs {
		p := s.Points[id]
		tmpl.slots = append(tmpl.slots, slot{kind: slotPointX, pointID: id})
		vec = append(vec, p.X)
		tmpl.slots = append(tmpl.slots, slot{kind: slotPointY, pointID: id})
		vec = append(vec, p.Y)
	}

	names := make([]string, 0, stats.DeterminedVars)
	for name, v := range s.Variables {
		if v.IsDetermined {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		tmpl.slots = append(tmpl.slots, slot{kind: slotVariable, varName: name})
		vec = append(vec, s.Variables[name].Value)
	}

	return tmpl, vec
}

// ApplyParams writes vec back into s according to tmpl. A slot whose
// referent has been deleted since the template was built is skipped
// rather than treated as an error — the solve loop restores a
// consistent store on every iteration, but a concurrent structural
// edit mid-solve is not part of this kernel's contract.
func ApplyParams(s *entity.Store, tmpl Template, vec []float64) {
	for i, sl := range tmpl.slots {
		if i >= len(vec) {
			return
		}
		switch sl.kind {
		case slotPointX:
			if p := s.Points[sl.pointID]; p != nil {
				p.X = vec[i]
			}
		case slotPointY:
			if p := s.Points[sl.pointID]; p != nil {
				p.Y = vec[i]
			}
		case slotVariable:
			if v := s.Variables[sl.varName]; v != nil {
				v.Value = vec[i]
			}
		}
	}
}
