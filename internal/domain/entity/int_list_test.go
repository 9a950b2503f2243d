package entity

import (
	"reflect"
	"testing"
)

func TestIntListRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list IntList
		raw  string
	}{
		{"empty", nil, ""},
		{"single", IntList{30}, "30"},
		{"several", IntList{1, 3, 5}, "1,3,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.list.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if v != tt.raw {
				t.Errorf("Value() = %q, want %q", v, tt.raw)
			}

			var back IntList
			if err := back.Scan(tt.raw); err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !reflect.DeepEqual(back, tt.list) {
				t.Errorf("Scan(%q) = %v, want %v", tt.raw, back, tt.list)
			}
		})
	}
}

func TestIntListScanInputs(t *testing.T) {
	var l IntList
	if err := l.Scan([]byte("2,4")); err != nil {
		t.Fatalf("Scan([]byte) error = %v", err)
	}
	if !reflect.DeepEqual(l, IntList{2, 4}) {
		t.Errorf("Scan([]byte) = %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if l != nil {
		t.Errorf("Scan(nil) = %v, want nil", l)
	}

	if err := l.Scan("1,x,3"); err == nil {
		t.Error("Scan should reject non-numeric elements")
	}
	if err := l.Scan(42); err == nil {
		t.Error("Scan should reject unsupported source types")
	}
}

func TestIntListContains(t *testing.T) {
	l := IntList{1, 3, 5}
	if !l.Contains(3) {
		t.Error("Contains(3) = false")
	}
	if l.Contains(2) {
		t.Error("Contains(2) = true")
	}
	if (IntList)(nil).Contains(0) {
		t.Error("empty list contains nothing")
	}
}
