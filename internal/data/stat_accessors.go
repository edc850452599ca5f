package data

import (
	"slices"

	"github.com/udisondev/gearscore/internal/model"
	"github.com/udisondev/gearscore/internal/rating"
)

// StatInfo -- exported view of a substat definition for use outside the
// data package.
type StatInfo struct {
	Kind     model.StatKind
	Rounding rating.Rounding
	Weight   float64
	Rolls    []float64
}

func statDefToInfo(def *statDef) *StatInfo {
	return &StatInfo{
		Kind:     def.kind,
		Rounding: def.rounding,
		Weight:   def.weight,
		Rolls:    slices.Clone(def.rolls),
	}
}

// GetStatInfo returns an exported stat view by kind.
// Returns nil if not found.
func GetStatInfo(kind model.StatKind) *StatInfo {
	def := GetStatDef(kind)
	if def == nil {
		return nil
	}
	return statDefToInfo(def)
}

// Profiles returns the loaded stat system as estimator profiles.
// Каждый вызов отдаёт свежие копии: мутации результата не трогают registry.
func Profiles() map[model.StatKind]rating.StatProfile {
	out := make(map[model.StatKind]rating.StatProfile, len(StatTable))
	for kind, def := range StatTable {
		out[kind] = rating.StatProfile{
			Rolls:    slices.Clone(def.rolls),
			Weight:   def.weight,
			Rounding: def.rounding,
		}
	}
	return out
}

// Kinds returns all loaded stat kinds in lexical order.
func Kinds() []model.StatKind {
	kinds := make([]model.StatKind, 0, len(StatTable))
	for kind := range StatTable {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}
