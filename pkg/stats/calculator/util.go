package calculator

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrUndefinedStatistic is returned when there are no values to summarise,
// usually because the filters matched no trips.
var ErrUndefinedStatistic = errors.New("undefined statistic")

// Mode returns the most frequent key, preferring the smallest on ties.
func Mode[K constraints.Ordered](countMap map[K]int) (K, error) {
	return ModeFunc(countMap, func(a, b K) bool { return a < b })
}

// ModeFunc is Mode with a caller supplied ordering for tie breaks.
func ModeFunc[K comparable](countMap map[K]int, less func(a, b K) bool) (K, error) {
	var mode K
	best := 0

	for value, count := range countMap {
		if count > best || (count == best && less(value, mode)) {
			mode = value
			best = count
		}
	}

	if best == 0 {
		return mode, ErrUndefinedStatistic
	}

	return mode, nil
}
