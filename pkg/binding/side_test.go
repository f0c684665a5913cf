package binding

import "testing"

func TestOpposite(t *testing.T) {
	if Left.Opposite() != Right {
		t.Errorf("Left.Opposite() = %v, want Right", Left.Opposite())
	}
	if Right.Opposite() != Left {
		t.Errorf("Right.Opposite() = %v, want Left", Right.Opposite())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Side
		wantErr bool
	}{
		{"left", Left, false},
		{"Left", Left, false},
		{" RIGHT ", Right, false},
		{"l", Left, false},
		{"r", Right, false},
		{"", "", true},
		{"middle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	for _, first := range []Side{Left, Right} {
		if At(first, 0) != first {
			t.Errorf("At(%v, 0) = %v, want %v", first, At(first, 0), first)
		}
		for i := 0; i < 10; i++ {
			if At(first, i) == At(first, i+1) {
				t.Errorf("At(%v, %d) == At(%v, %d): sides must alternate", first, i, first, i+1)
			}
		}
	}
}

func TestValid(t *testing.T) {
	if !Left.Valid() || !Right.Valid() {
		t.Error("Left and Right should be valid")
	}
	if Side("Up").Valid() {
		t.Error("Side(Up) should not be valid")
	}
}
