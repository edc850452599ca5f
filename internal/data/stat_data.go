package data

import (
	"github.com/udisondev/gearscore/internal/model"
	"github.com/udisondev/gearscore/internal/rating"
)

// statDef -- определение substat kind: roll values, вес и rounding mode.
type statDef struct {
	kind     model.StatKind
	rounding rating.Rounding
	weight   float64
	rolls    []float64
}

// statDef accessor methods -- provide read access to statDef fields.

func (d *statDef) Kind() model.StatKind      { return d.kind }
func (d *statDef) Rounding() rating.Rounding { return d.rounding }
func (d *statDef) Weight() float64           { return d.weight }
func (d *statDef) Rolls() []float64          { return d.rolls }

// statDefs -- built-in stat system.
// Percent stats показываются с одним знаком после запятой (tenth),
// flat stats -- целыми (whole). Weight задаёт вклад kind'а в оценку.
var statDefs = []statDef{
	{kind: model.StatAttackPercent, rounding: rating.RoundTenth, weight: 1.0, rolls: []float64{3.3, 3.7, 4.1, 4.5}},
	{kind: model.StatHPPercent, rounding: rating.RoundTenth, weight: 1.0, rolls: []float64{3.3, 3.7, 4.1, 4.5}},
	{kind: model.StatDefensePercent, rounding: rating.RoundTenth, weight: 0.9, rolls: []float64{4.1, 4.7, 5.3, 5.8}},
	{kind: model.StatCritRate, rounding: rating.RoundTenth, weight: 2.0, rolls: []float64{2.4, 2.7, 3.0, 3.3}},
	{kind: model.StatCritDamage, rounding: rating.RoundTenth, weight: 1.3, rolls: []float64{4.8, 5.4, 6.0, 6.6}},
	{kind: model.StatEffectHit, rounding: rating.RoundTenth, weight: 0.8, rolls: []float64{3.3, 3.7, 4.1, 4.5}},
	{kind: model.StatEffectResist, rounding: rating.RoundTenth, weight: 0.6, rolls: []float64{3.3, 3.7, 4.1, 4.5}},
	{kind: model.StatAttackFlat, rounding: rating.RoundWhole, weight: 0.4, rolls: []float64{15, 17, 19, 21}},
	{kind: model.StatHPFlat, rounding: rating.RoundWhole, weight: 0.3, rolls: []float64{70, 80, 90, 100}},
	{kind: model.StatDefenseFlat, rounding: rating.RoundWhole, weight: 0.35, rolls: []float64{12, 14, 16, 18}},
	{kind: model.StatSpeed, rounding: rating.RoundWhole, weight: 1.2, rolls: []float64{2, 3, 4}},
}
