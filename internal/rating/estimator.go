package rating

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gearscore/internal/model"
)

// Estimator errors.
var (
	// ErrUnknownKind -- substat kind отсутствует в таблице профилей.
	ErrUnknownKind = errors.New("stat kind is not configured")
	// ErrNoProfiles -- эстиматор без единого профиля бесполезен.
	ErrNoProfiles = errors.New("no stat profiles configured")
)

// StatProfile configures one stat kind: the legal roll values, the scoring
// weight and the rounding mode its displayed amounts use.
type StatProfile struct {
	Rolls    []float64
	Weight   float64
	Rounding Rounding
}

// AttributeEvidence is the rating evidence for one substat: the scoring
// weight of its kind plus every roll combination that explains the observed
// amount. The final numeric score is left to the caller: вес и комбинации
// уже вычислены, формула свёртки зависит от потребителя.
type AttributeEvidence struct {
	Kind   model.StatKind
	Amount float64
	Weight float64
	// Combinations holds every explaining multiset, each sorted ascending.
	// Empty slice: the amount is not reachable from the configured rolls.
	Combinations [][]float64
	// Err is set when the kind had no profile. Weight and Combinations are
	// zero in that case.
	Err error
}

// RollCounts returns the distinct combination lengths in ascending order:
// the candidate answers to "how many rolls landed on this stat".
func (ev AttributeEvidence) RollCounts() []int {
	if len(ev.Combinations) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(ev.Combinations))
	counts := make([]int, 0, len(ev.Combinations))
	for _, c := range ev.Combinations {
		if !seen[len(c)] {
			seen[len(c)] = true
			counts = append(counts, len(c))
		}
	}
	slices.Sort(counts)
	return counts
}

// Estimator reconstructs roll evidence for gear items. The profile table is
// copied at construction; after that the estimator is read-only and safe for
// concurrent use.
type Estimator struct {
	profiles map[model.StatKind]StatProfile
	workers  int
}

// NewEstimator builds an estimator from per-kind stat profiles.
//
// Каждый профиль проверяется: rounding mode должен быть определён, weight --
// конечным и неотрицательным, roll values -- конечными и строго положительными
// (overshoot prune в FindCombinations опирается на положительные rolls).
func NewEstimator(profiles map[model.StatKind]StatProfile) (*Estimator, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	for kind, p := range profiles {
		if kind == "" {
			return nil, fmt.Errorf("profile with empty stat kind")
		}
		if !p.Rounding.valid() {
			return nil, fmt.Errorf("stat %s: unknown rounding mode %d", kind, p.Rounding)
		}
		if !isFinite(p.Weight) || p.Weight < 0 {
			return nil, fmt.Errorf("stat %s: weight must be finite and non-negative, got %v", kind, p.Weight)
		}
		for _, roll := range p.Rolls {
			if !isFinite(roll) || roll <= 0 {
				return nil, fmt.Errorf("stat %s: roll values must be finite and positive, got %v", kind, roll)
			}
		}
	}

	e := &Estimator{profiles: make(map[model.StatKind]StatProfile, len(profiles))}
	for kind, p := range profiles {
		e.profiles[kind] = StatProfile{
			Rolls:    slices.Clone(p.Rolls),
			Weight:   p.Weight,
			Rounding: p.Rounding,
		}
	}
	return e, nil
}

// SetWorkers caps EstimateAll parallelism. Values < 1 reset to GOMAXPROCS.
// Not safe to call concurrently with EstimateAll.
func (e *Estimator) SetWorkers(n int) {
	e.workers = n
}

// Profile returns the profile of a kind. Caller must not mutate Rolls.
func (e *Estimator) Profile(kind model.StatKind) (StatProfile, bool) {
	p, ok := e.profiles[kind]
	return p, ok
}

// Kinds returns the configured stat kinds in lexical order.
func (e *Estimator) Kinds() []model.StatKind {
	kinds := make([]model.StatKind, 0, len(e.profiles))
	for kind := range e.profiles {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// FindCombinations resolves the kind's profile and runs the combination
// search against the observed amount. Returns ErrUnknownKind for a kind
// missing from the profile table.
func (e *Estimator) FindCombinations(kind model.StatKind, amount float64) ([][]float64, error) {
	p, ok := e.profiles[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return FindCombinations(p.Rolls, amount, p.Rounding), nil
}

// EstimateGear assembles roll evidence for every attribute of one gear piece,
// in attribute order.
//
// Substat с неизвестным kind не прерывает остальные: его evidence получает
// Err, общая ошибка собирается через errors.Join. Evidence возвращается
// и при ненулевой ошибке.
func (e *Estimator) EstimateGear(g *model.Gear) ([]AttributeEvidence, error) {
	if g == nil {
		return nil, fmt.Errorf("gear is nil")
	}

	attrs := g.Attributes()
	evidence := make([]AttributeEvidence, 0, len(attrs))
	var errs []error

	for _, attr := range attrs {
		ev := AttributeEvidence{Kind: attr.Kind, Amount: attr.Amount}

		p, ok := e.profiles[attr.Kind]
		if !ok {
			ev.Err = fmt.Errorf("%s: attribute %q: %w", g.Name(), attr.Kind, ErrUnknownKind)
			errs = append(errs, ev.Err)
			evidence = append(evidence, ev)
			continue
		}

		ev.Weight = p.Weight
		ev.Combinations = FindCombinations(p.Rolls, attr.Amount, p.Rounding)
		evidence = append(evidence, ev)
	}

	return evidence, errors.Join(errs...)
}

// EstimateAll rates a batch of gear pieces concurrently. evidence[i] always
// corresponds to items[i].
//
// Per-item ошибки (nil gear, неизвестные kinds) собираются в joined error и
// не отменяют соседей; отмена контекста останавливает batch, и тогда
// возвращается nil evidence с ошибкой контекста.
func (e *Estimator) EstimateAll(ctx context.Context, items []*model.Gear) ([][]AttributeEvidence, error) {
	workers := e.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	evidence := make([][]AttributeEvidence, len(items))
	itemErrs := make([]error, len(items))

	for i, item := range items {
		i, item := i, item // per-iteration copies: pre-1.22 loop vars are shared
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ev, err := e.EstimateGear(item)
			evidence[i] = ev
			if err != nil {
				itemErrs[i] = fmt.Errorf("item %d: %w", i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return evidence, errors.Join(itemErrs...)
}
