package formats

import (
	"errors"
	gomath "math"
	"testing"
)

func TestReadNumbers_Successful(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		min, max int
		want     []float64
	}{
		{"multiple numbers with whitespace", "3.1415    2.23    1.43", 3, 3, []float64{3.1415, 2.23, 1.43}},
		{"upper part of interval", "3.1415    2.23    -1.43", 1, 3, []float64{3.1415, 2.23, -1.43}},
		{"lower part of interval", "        -3.1415", 1, 3, []float64{-3.1415}},
		{"middle of interval", "3.1415    2.23    1.43", 2, 4, []float64{3.1415, 2.23, 1.43}},
		{"tabs and trailing whitespace", "\t1\t2 3 \t", 3, 3, []float64{1, 2, 3}},
		{"exponent", " 1e3 -2.5E-1 +.5", 3, 3, []float64{1000, -0.25, 0.5}},
		{"integers", "145784 0 -7", 3, 3, []float64{145784, 0, -7}},
		{"adjacent signed numbers", "1-2", 2, 2, []float64{1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, tt.max)
			n, err := ReadNumbers(tt.text, out, tt.min, tt.max)
			if err != nil {
				t.Fatalf("ReadNumbers(%q) failed: %v", tt.text, err)
			}
			if n != len(tt.want) {
				t.Fatalf("count: got %d, want %d", n, len(tt.want))
			}
			for i, want := range tt.want {
				if out[i] != want {
					t.Errorf("out[%d]: got %v, want %v", i, out[i], want)
				}
			}
		})
	}
}

func TestReadNumbers_Unsuccessful(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		min, max int
		wantErr  error
		wantN    int
		prefix   []float64 // values that must stay written
	}{
		{"too few numbers read", "3.1415", 2, 3, ErrTooFewNumbers, 1, []float64{3.1415}},
		{"non number characters", "3.1415 a", 2, 3, ErrNotANumber, 1, []float64{3.1415}},
		{"too many numbers read", "3.1415 2 3 4", 2, 3, ErrTrailingData, 3, []float64{3.1415, 2, 3}},
		{"junk at end", "1 2 3 4 asd", 3, 4, ErrTrailingData, 4, []float64{1, 2, 3, 4}},
		{"junk in the middle", "-5 5 asd 0 2.5", 3, 4, ErrNotANumber, 2, []float64{-5, 5}},
		{"junk glued to number", "1 2 3abc", 3, 4, ErrNotANumber, 3, []float64{1, 2, 3}},
		{"empty text", "", 1, 3, ErrTooFewNumbers, 0, nil},
		{"only whitespace", "    ", 1, 3, ErrTooFewNumbers, 0, nil},
		{"lone sign", "-", 1, 1, ErrNotANumber, 0, nil},
		{"lone dot", "1 .", 2, 2, ErrNotANumber, 1, []float64{1}},
		{"out of range", "1e400", 1, 1, ErrNotANumber, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, 4)
			n, err := ReadNumbers(tt.text, out, tt.min, tt.max)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if n != tt.wantN {
				t.Errorf("count: got %d, want %d", n, tt.wantN)
			}
			for i, want := range tt.prefix {
				if out[i] != want {
					t.Errorf("out[%d]: got %v, want %v", i, out[i], want)
				}
			}
		})
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     float64
		wantUsed int
		wantOK   bool
	}{
		{"leading whitespace", "    3.1415", 3.1415, 10, true},
		{"negative", "-2.45", -2.45, 5, true},
		{"integer", "145784", 145784, 6, true},
		{"stops at second dot", "1.5.3", 1.5, 3, true},
		{"dangling exponent", "2e", 2, 1, true},
		{"letter with whitespace", "    a.1415", 0, 0, false},
		{"letter after sign", "-aasd", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, used, ok := scanNumber(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want || used != tt.wantUsed {
				t.Errorf("got (%v, %d), want (%v, %d)", got, used, tt.want, tt.wantUsed)
			}
		})
	}
}

func TestScanNumber_InfNaN(t *testing.T) {
	v, used, ok := scanNumber(" -inf 1")
	if !ok || !gomath.IsInf(v, -1) || used != 5 {
		t.Errorf("-inf: got (%v, %d, %v)", v, used, ok)
	}

	v, used, ok = scanNumber("NaN")
	if !ok || !gomath.IsNaN(v) || used != 3 {
		t.Errorf("NaN: got (%v, %d, %v)", v, used, ok)
	}

	v, used, ok = scanNumber("Infinity")
	if !ok || !gomath.IsInf(v, 1) || used != 8 {
		t.Errorf("Infinity: got (%v, %d, %v)", v, used, ok)
	}
}

func TestScanNumber_SignedNaN(t *testing.T) {
	for _, in := range []string{"-nan", "+NaN", " -NAN"} {
		v, used, ok := scanNumber(in)
		if !ok || !gomath.IsNaN(v) || used != len(in) {
			t.Errorf("%q: got (%v, %d, %v)", in, v, used, ok)
		}
	}

	v, _, ok := scanNumber("+inf")
	if !ok || !gomath.IsInf(v, 1) {
		t.Errorf("+inf: got (%v, %v)", v, ok)
	}

	var out [3]float64
	if n, err := ReadNumbers("-nan 1 +nan", out[:], 3, 3); err != nil || n != 3 {
		t.Fatalf("ReadNumbers: got (%d, %v)", n, err)
	}
	if !gomath.IsNaN(out[0]) || out[1] != 1 || !gomath.IsNaN(out[2]) {
		t.Errorf("ReadNumbers values: got %v", out)
	}
}
