// Package stats provides pure aggregate and dispersion functions over
// sequences of monetary amounts. All functions are side-effect free and safe
// for concurrent use.
package stats

import (
	"math"
	"sort"
)

// Basic summarizes totals across the two transaction collections.
type Basic struct {
	TotalExpenses float64 `json:"totalExpenses"`
	TotalIncomes  float64 `json:"totalIncomes"`
	TotalBalance  float64 `json:"totalBalance"`
}

// Advanced carries dispersion statistics for a single collection. Median is
// nil when the collection is empty.
type Advanced struct {
	Median            *float64 `json:"median"`
	Average           float64  `json:"average"`
	StandardDeviation float64  `json:"standardDeviation"`
}

// BasicStats sums each collection and derives the balance. Empty inputs yield
// zeros; totalBalance is always totalIncomes - totalExpenses.
func BasicStats(expenses, incomes []float64) Basic {
	b := Basic{}
	for _, amount := range expenses {
		b.TotalExpenses += amount
	}
	for _, amount := range incomes {
		b.TotalIncomes += amount
	}
	b.TotalBalance = b.TotalIncomes - b.TotalExpenses
	return b
}

// Median returns the middle value of the amounts, or nil for an empty input.
// For an even count it is the mean of the two middle values. The input slice
// is never reordered; sorting happens on a copy.
func Median(amounts []float64) *float64 {
	if len(amounts) == 0 {
		return nil
	}

	sorted := make([]float64, len(amounts))
	copy(sorted, amounts)
	sort.Float64s(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		m := (sorted[middle-1] + sorted[middle]) / 2
		return &m
	}
	m := sorted[middle]
	return &m
}

// Average returns the arithmetic mean, or 0 for an empty input.
func Average(amounts []float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	var total float64
	for _, amount := range amounts {
		total += amount
	}
	return total / float64(len(amounts))
}

// StdDev returns the population standard deviation (dividing by N, not N-1),
// or 0 for an empty input. The mean must be the one computed by Average over
// the same amounts; results are meaningless otherwise.
func StdDev(amounts []float64, mean float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	var sum float64
	for _, amount := range amounts {
		d := amount - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(amounts)))
}

// AdvancedStats composes Median, Average and StdDev, computing the average
// first and feeding it into the standard deviation.
func AdvancedStats(amounts []float64) Advanced {
	avg := Average(amounts)
	return Advanced{
		Median:            Median(amounts),
		Average:           avg,
		StandardDeviation: StdDev(amounts, avg),
	}
}
