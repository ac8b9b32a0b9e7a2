package lib

import "fmt"
import "math"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram over int64 samples, bucketed
// into fixed width ranges between from and till. Samples outside the
// range accumulate in the first and last bucket.
type HistogramInt64 struct {
	// stats
	n         int64
	minval    int64
	maxval    int64
	sum       int64
	sumsq     float64
	histogram []int64
	// setup
	init  bool
	from  int64
	till  int64
	width int64
}

// NewhistogramInt64 return a new histogram object, from and till are
// rounded down to multiples of width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.init == false || sample < h.minval {
		h.minval = sample
		h.init = true
	}
	if h.maxval < sample {
		h.maxval = sample
	}

	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Min minimum sample value.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max maximum sample value.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean average of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

// Variance squared deviation of samples from their mean.
func (h *HistogramInt64) Variance() int64 {
	if h.n == 0 {
		return 0
	}
	nF, meanF := float64(h.n), float64(h.Mean())
	return int64((h.sumsq / nF) - (meanF * meanF))
}

// SD standard deviation of samples from their mean.
func (h *HistogramInt64) SD() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(h.Variance())))
}

// Stats map of non-empty buckets, keyed by the bucket's lower bound.
// Samples below from are keyed "-", samples at or above till "+".
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	for i, v := range h.histogram {
		if v == 0 {
			continue
		}
		switch i {
		case 0:
			m["-"] = v
		case len(h.histogram) - 1:
			m["+"] = v
		default:
			m[strconv.Itoa(int(h.from+(int64(i-1)*h.width)))] = v
		}
	}
	return m
}

// Fullstats includes mean, variance, stddeviance with Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   h.Stats(),
	}
}

// Logstring return Fullstats as loggable string.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	keys := []string{}
	for k := range stats {
		if k != "histogram" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	ss := []string{}
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	histogram := stats["histogram"].(map[string]int64)
	hkeys := []string{}
	for k := range histogram {
		hkeys = append(hkeys, k)
	}
	sort.Strings(hkeys)
	hs := []string{}
	for _, k := range hkeys {
		hs = append(hs, fmt.Sprintf(`"%v": %v`, k, histogram[k]))
	}
	ss = append(ss, `"histogram": {`+strings.Join(hs, ",")+`}`)
	return "{" + strings.Join(ss, ",") + "}"
}
