package data

import (
	"slices"
	"testing"

	"github.com/udisondev/gearscore/internal/model"
	"github.com/udisondev/gearscore/internal/rating"
)

func TestGetStatInfo_Found(t *testing.T) {
	// Temporarily inject test data
	oldTable := StatTable
	StatTable = map[model.StatKind]*statDef{
		model.StatCritRate: {kind: model.StatCritRate, rounding: rating.RoundTenth, weight: 2.0, rolls: []float64{2.4, 2.7}},
	}
	defer func() { StatTable = oldTable }()

	info := GetStatInfo(model.StatCritRate)
	if info == nil {
		t.Fatal("GetStatInfo(crit_rate) = nil, want info")
	}
	if info.Kind != model.StatCritRate {
		t.Errorf("Kind = %s, want crit_rate", info.Kind)
	}
	if info.Rounding != rating.RoundTenth {
		t.Errorf("Rounding = %v, want tenth", info.Rounding)
	}
	if info.Weight != 2.0 {
		t.Errorf("Weight = %v, want 2.0", info.Weight)
	}
	if !slices.Equal(info.Rolls, []float64{2.4, 2.7}) {
		t.Errorf("Rolls = %v, want [2.4 2.7]", info.Rolls)
	}
}

func TestGetStatInfo_NotFound(t *testing.T) {
	oldTable := StatTable
	StatTable = map[model.StatKind]*statDef{}
	defer func() { StatTable = oldTable }()

	if info := GetStatInfo(model.StatSpeed); info != nil {
		t.Errorf("GetStatInfo(speed) = %v, want nil", info)
	}
}

func TestGetStatInfo_CopiesRolls(t *testing.T) {
	def := &statDef{kind: model.StatSpeed, rounding: rating.RoundWhole, weight: 1.2, rolls: []float64{2, 3, 4}}
	oldTable := StatTable
	StatTable = map[model.StatKind]*statDef{model.StatSpeed: def}
	defer func() { StatTable = oldTable }()

	info := GetStatInfo(model.StatSpeed)
	info.Rolls[0] = 99

	if def.rolls[0] != 2 {
		t.Errorf("registry rolls mutated through exported view: %v", def.rolls)
	}
}

func TestProfiles(t *testing.T) {
	oldTable := StatTable
	defer func() { StatTable = oldTable }()

	if err := LoadStatProfiles(); err != nil {
		t.Fatalf("LoadStatProfiles: %v", err)
	}

	profiles := Profiles()
	if len(profiles) != len(StatTable) {
		t.Fatalf("Profiles size = %d, want %d", len(profiles), len(StatTable))
	}

	for kind, def := range StatTable {
		p, ok := profiles[kind]
		if !ok {
			t.Errorf("kind %s missing from profiles", kind)
			continue
		}
		if p.Weight != def.weight || p.Rounding != def.rounding {
			t.Errorf("profile %s = %+v, want weight %v rounding %v", kind, p, def.weight, def.rounding)
		}
		if !slices.Equal(p.Rolls, def.rolls) {
			t.Errorf("profile %s rolls = %v, want %v", kind, p.Rolls, def.rolls)
		}
	}

	// Копии: мутация профиля не должна трогать registry.
	profiles[model.StatSpeed].Rolls[0] = 99
	if StatTable[model.StatSpeed].rolls[0] == 99 {
		t.Error("registry rolls mutated through Profiles()")
	}
}

func TestKinds(t *testing.T) {
	oldTable := StatTable
	StatTable = map[model.StatKind]*statDef{
		model.StatSpeed:    {kind: model.StatSpeed},
		model.StatCritRate: {kind: model.StatCritRate},
		model.StatHPFlat:   {kind: model.StatHPFlat},
	}
	defer func() { StatTable = oldTable }()

	want := []model.StatKind{model.StatCritRate, model.StatHPFlat, model.StatSpeed}
	if got := Kinds(); !slices.Equal(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
}
