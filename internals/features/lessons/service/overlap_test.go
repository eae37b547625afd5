// file: internals/features/lessons/service/overlap_test.go
package service

import "testing"

func TestIntervalsConflict(t *testing.T) {
	cases := []struct {
		name               string
		candStart, candEnd int64
		exStart, exEnd     int64
		want               bool
	}{
		{"identik", 1000, 2000, 1000, 2000, true},
		{"beririsan sebagian", 1000, 2000, 1500, 2500, true},
		{"existing di dalam kandidat", 1000, 4000, 2000, 3000, true},
		{"kandidat di dalam existing", 2000, 3000, 1000, 4000, true},
		{"back-to-back kandidat dulu", 1000, 2000, 2000, 3000, false},
		{"back-to-back existing dulu", 2000, 3000, 1000, 2000, false},
		{"terpisah jauh", 1000, 2000, 5000, 6000, false},
		{"existing berakhir tepat di start", 2000, 3000, 500, 2000, false},
		{"existing mulai tepat di end", 1000, 2000, 2000, 2500, false},
		{"start sama panjang beda", 1000, 2000, 1000, 1500, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IntervalsConflict(tc.candStart, tc.candEnd, tc.exStart, tc.exEnd)
			if got != tc.want {
				t.Fatalf("IntervalsConflict(%d,%d,%d,%d) = %v, want %v",
					tc.candStart, tc.candEnd, tc.exStart, tc.exEnd, got, tc.want)
			}
			// bentrok itu simetris
			rev := IntervalsConflict(tc.exStart, tc.exEnd, tc.candStart, tc.candEnd)
			if rev != got {
				t.Fatalf("predikat tidak simetris: maju=%v balik=%v", got, rev)
			}
		})
	}
}
