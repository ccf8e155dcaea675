package hamt

import "testing"

func TestFragment(t *testing.T) {
	type args struct {
		h uint64
	}
	tests := []struct {
		name string
		args args
		want uint32
	}{
		{"zero hash gives branch 0", args{0}, 0},
		{"all ones gives branch 31", args{^uint64(0)}, 31},
		{"only the top 5 bits are read", args{uint64(0b10110) << 59}, 0b10110},
		{"bits below the mask are ignored", args{(uint64(1) << 59) | 0x7ff_ffff_ffff_ffff}, 1},
		{"top bit alone gives branch 16", args{uint64(1) << 63}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fragment(tt.args.h); got != tt.want {
				t.Errorf("fragment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	type args struct {
		presence uint32
		idx      uint32
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"branch 0 always ranks 0", args{0xffffffff, 0}, 0},
		{"empty bitmap ranks 0 everywhere", args{0, 17}, 0},
		{"one lower bit set", args{0b00000010, 4}, 1},
		{"own bit does not count", args{0b00010000, 4}, 0},
		{"dense low bits", args{0b00001111, 4}, 4},
		{"full bitmap below 31", args{0xffffffff, 31}, 31},
		{"sparse bitmap", args{0b1010_0000_0001_0001, 15}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rank(tt.args.presence, tt.args.idx); got != tt.want {
				t.Errorf("rank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFragmentConsumption(t *testing.T) {
	// Walking the working hash left by fragBits per level must visit
	// every 5 bit slice of the hash most significant first.
	h := uint64(0)
	for i := range 12 {
		h = h<<5 | uint64(i+1)
	}
	h <<= 4 // 12 slices fill 60 bits; the low 4 are padding

	for level := range 12 {
		if got, want := fragment(h), uint32(level+1); got != want {
			t.Errorf("level %d: fragment() = %v, want %v", level, got, want)
		}
		h <<= fragBits
	}
}
