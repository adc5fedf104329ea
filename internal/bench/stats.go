package bench

import (
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Outliers counts samples outside Tukey's fences: mild beyond 1.5 IQR from
// the quartiles, severe beyond 3 IQR.
type Outliers struct {
	LowSevere  int
	LowMild    int
	HighMild   int
	HighSevere int
}

// Total is the number of outlying samples.
func (o Outliers) Total() int {
	return o.LowSevere + o.LowMild + o.HighMild + o.HighSevere
}

// Stats summarizes per-iteration sample times.
type Stats struct {
	Samples  int
	Mean     time.Duration
	Variance float64 // ns²
	StdDev   time.Duration
	Median   time.Duration
	Min      time.Duration
	Max      time.Duration
	Outliers Outliers
}

// Summarize computes statistics over per-iteration times in nanoseconds.
// Variance is the unbiased sample variance; Median is the empirical
// median (the lower middle sample for an even count).
func Summarize(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	variance := 0.0
	if n > 1 {
		variance = stat.Variance(sorted, nil)
	}

	return Stats{
		Samples:  n,
		Mean:     ns(stat.Mean(sorted, nil)),
		Variance: variance,
		StdDev:   ns(math.Sqrt(variance)),
		Median:   ns(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		Min:      ns(sorted[0]),
		Max:      ns(sorted[n-1]),
		Outliers: classify(sorted),
	}
}

// classify expects sorted samples.
func classify(sorted []float64) Outliers {
	q1, q3 := quartiles(sorted)
	iqr := q3 - q1
	lowSevere, lowMild := q1-3*iqr, q1-1.5*iqr
	highMild, highSevere := q3+1.5*iqr, q3+3*iqr

	var o Outliers
	for _, s := range sorted {
		switch {
		case s < lowSevere:
			o.LowSevere++
		case s < lowMild:
			o.LowMild++
		case s > highSevere:
			o.HighSevere++
		case s > highMild:
			o.HighMild++
		}
	}
	return o
}

// quartiles interpolates linearly along the empirical CDF of sorted.
func quartiles(sorted []float64) (q1, q3 float64) {
	return stat.Quantile(0.25, stat.LinInterp, sorted, nil), stat.Quantile(0.75, stat.LinInterp, sorted, nil)
}

func ns(v float64) time.Duration {
	return time.Duration(math.Round(v))
}
