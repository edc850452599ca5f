// Package rating reconstructs upgrade roll history from observed gear stats.
//
// Rating flow:
//  1. Каждый substat на предмете накапливает сумму из 1..6 roll values
//  2. Игрок видит только итоговую сумму, округлённую до display precision
//  3. FindCombinations перебирает все multisets of roll values, чья
//     округлённая сумма совпадает с округлённым observed amount
//  4. Estimator собирает per-attribute evidence (weight + combinations)
//     для целого предмета или пачки предметов
//
// Пакет чистый: без I/O, без глобального состояния. Таблицы roll values
// приходят снаружи (см. internal/data и internal/config).
package rating

import (
	"slices"
	"strconv"
	"strings"
)

// MaxRollsPerStat is the hard cap on how many rolls a single substat can
// accumulate. Items upgrade a stat at most six times, so longer combinations
// can never explain real data and the search never looks past this depth.
const MaxRollsPerStat = 6

// FindCombinations returns every distinct multiset of candidate roll values
// (repetition allowed, up to MaxRollsPerStat values) whose sum rounds to the
// same key as target under the given mode.
//
// Each returned combination is sorted ascending; the multiset {1.0, 2.0}
// appears once no matter how many orderings reach it. The result order is
// unspecified. An empty result means no combination explains the amount.
// If target itself rounds to zero, the empty combination is a valid answer
// and the result is [[]].
//
// The search walks an explicit work stack. Branches are cut as soon as the
// rounded partial sum reaches the rounded target: roll values are positive,
// so a longer path can only move further away.
func FindCombinations(candidates []float64, target float64, mode Rounding) [][]float64 {
	targetKey := mode.key(target)

	type node struct {
		path []float64
		sum  float64
	}

	stack := []node{{}}
	seen := make(map[string]bool)
	var found [][]float64

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(n.path) > MaxRollsPerStat {
			continue
		}

		sumKey := mode.key(n.sum)
		if sumKey >= targetKey {
			if sumKey == targetKey {
				combo := make([]float64, len(n.path))
				copy(combo, n.path)
				slices.Sort(combo)

				key := comboKey(combo)
				if !seen[key] {
					seen[key] = true
					found = append(found, combo)
				}
			}
			continue
		}

		for _, c := range candidates {
			next := make([]float64, len(n.path)+1)
			copy(next, n.path)
			next[len(n.path)] = c
			stack = append(stack, node{path: next, sum: n.sum + c})
		}
	}

	return found
}

// comboKey builds the dedup key of an ascending-sorted combination.
// Keys encode exact float values, not rounded ones: {1.6, 2.2} и {1.5, 2.3}
// дают одинаковую сумму, но это разные истории апгрейда.
func comboKey(combo []float64) string {
	var b strings.Builder
	for i, v := range combo {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}
