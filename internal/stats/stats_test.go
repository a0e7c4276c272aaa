package stats

import (
	"math"
	"testing"
)

func TestBasicStats(t *testing.T) {
	tests := []struct {
		name     string
		expenses []float64
		incomes  []float64
		want     Basic
	}{
		{
			name:     "Empty collections",
			expenses: nil,
			incomes:  nil,
			want:     Basic{TotalExpenses: 0, TotalIncomes: 0, TotalBalance: 0},
		},
		{
			name:     "Incomes exceed expenses",
			expenses: []float64{100, 50},
			incomes:  []float64{400},
			want:     Basic{TotalExpenses: 150, TotalIncomes: 400, TotalBalance: 250},
		},
		{
			name:     "Negative balance",
			expenses: []float64{300},
			incomes:  []float64{120.5},
			want:     Basic{TotalExpenses: 300, TotalIncomes: 120.5, TotalBalance: -179.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BasicStats(tt.expenses, tt.incomes)
			if got != tt.want {
				t.Errorf("BasicStats() = %+v, want %+v", got, tt.want)
			}
			if got.TotalBalance != got.TotalIncomes-got.TotalExpenses {
				t.Errorf("balance identity violated: %+v", got)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	if m := Median(nil); m != nil {
		t.Errorf("Median(nil) = %v, want nil", *m)
	}

	tests := []struct {
		name    string
		amounts []float64
		want    float64
	}{
		{"Single element", []float64{42}, 42},
		{"Odd count", []float64{10, 20, 30}, 20},
		{"Odd count unsorted", []float64{30, 10, 20}, 20},
		{"Even count", []float64{5, 15}, 10},
		{"Even count unsorted", []float64{40, 10, 30, 20}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Median(tt.amounts)
			if m == nil {
				t.Fatal("Median() = nil, want value")
			}
			if *m != tt.want {
				t.Errorf("Median() = %v, want %v", *m, tt.want)
			}
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	amounts := []float64{30, 10, 20}
	Median(amounts)
	if amounts[0] != 30 || amounts[1] != 10 || amounts[2] != 20 {
		t.Errorf("Median reordered its input: %v", amounts)
	}
}

func TestAverage(t *testing.T) {
	if avg := Average(nil); avg != 0 {
		t.Errorf("Average(nil) = %v, want 0", avg)
	}
	if avg := Average([]float64{10, 20, 30}); avg != 20 {
		t.Errorf("Average() = %v, want 20", avg)
	}
	if avg := Average([]float64{5, 15}); avg != 10 {
		t.Errorf("Average() = %v, want 10", avg)
	}
}

func TestStdDev(t *testing.T) {
	if sd := StdDev(nil, 123); sd != 0 {
		t.Errorf("StdDev(nil) = %v, want 0", sd)
	}

	// Constant sequences have zero dispersion regardless of length.
	for _, n := range []int{1, 2, 5, 100} {
		amounts := make([]float64, n)
		for i := range amounts {
			amounts[i] = 7.5
		}
		if sd := StdDev(amounts, Average(amounts)); sd != 0 {
			t.Errorf("StdDev of constant sequence (n=%d) = %v, want 0", n, sd)
		}
	}

	// Population formula: divide by N.
	if sd := StdDev([]float64{5, 15}, 10); sd != 5 {
		t.Errorf("StdDev([5 15], 10) = %v, want 5", sd)
	}
}

func TestAdvancedStats(t *testing.T) {
	got := AdvancedStats([]float64{10, 20, 30})
	if got.Median == nil || *got.Median != 20 {
		t.Errorf("median = %v, want 20", got.Median)
	}
	if got.Average != 20 {
		t.Errorf("average = %v, want 20", got.Average)
	}
	if math.Abs(got.StandardDeviation-8.16496580927726) > 1e-9 {
		t.Errorf("standardDeviation = %v, want ~8.165", got.StandardDeviation)
	}

	empty := AdvancedStats(nil)
	if empty.Median != nil || empty.Average != 0 || empty.StandardDeviation != 0 {
		t.Errorf("AdvancedStats(nil) = %+v, want nil/0/0", empty)
	}
}
