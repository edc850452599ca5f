package data

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/gearscore/internal/model"
)

// StatTable -- глобальный registry всех substat definitions.
// map[kind]*statDef
var StatTable map[model.StatKind]*statDef

// GetStatDef возвращает statDef по kind.
// Returns nil если kind не найден.
func GetStatDef(kind model.StatKind) *statDef {
	if StatTable == nil {
		return nil
	}
	return StatTable[kind]
}

// LoadStatProfiles строит StatTable из Go-литералов (statDefs).
func LoadStatProfiles() error {
	table := make(map[model.StatKind]*statDef, len(statDefs))

	for i := range statDefs {
		def := &statDefs[i]
		if _, dup := table[def.kind]; dup {
			return fmt.Errorf("duplicate stat kind %s", def.kind)
		}
		if len(def.rolls) == 0 {
			return fmt.Errorf("stat %s has no roll values", def.kind)
		}
		table[def.kind] = def
	}

	StatTable = table
	slog.Info("loaded stat profiles", "count", len(StatTable))
	return nil
}
