package lib

import "reflect"
import "strings"
import "testing"

func TestHistogramInt64(t *testing.T) {
	h := NewhistogramInt64(3, 97, 3)
	for i := 1; i <= 100; i++ {
		h.Add(int64(i))
	}
	if x, y := int64(1), h.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2, h.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := int64(50), h.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := int64(883), h.Variance(); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := int64(29), h.SD(); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}
}

func TestHistogramBuckets(t *testing.T) {
	samples := []int64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	h := NewhistogramInt64(6, 15, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	ref := map[string]int64{"-": 6, "6": 2, "9": 3, "12": 3, "+": 3}
	if data := h.Stats(); reflect.DeepEqual(ref, data) == false {
		t.Errorf("expected %v, got %v", ref, data)
	}
}

func TestHistogramLogstring(t *testing.T) {
	h := NewhistogramInt64(0, 16, 8)
	h.Add(4)
	h.Add(12)
	h.Add(20)
	out := h.Logstring()
	for _, frag := range []string{`"samples": 3`, `"min": 4`, `"max": 20`, `"histogram": {`} {
		if strings.Contains(out, frag) == false {
			t.Errorf("expected %v in %v", frag, out)
		}
	}
}
