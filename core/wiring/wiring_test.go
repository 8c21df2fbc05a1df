package wiring

import (
	"strings"
	"testing"

	"enigma-core/alphabet"
	"enigma-core/fault"
)

// letterPairs turns "AY BR" into pairs.
func letterPairs(t *testing.T, s string) []Pair {
	t.Helper()
	var out []Pair
	for _, f := range strings.Fields(s) {
		a, _ := alphabet.Index(rune(f[0]))
		b, _ := alphabet.Index(rune(f[1]))
		out = append(out, Pair{A: a, B: b})
	}
	return out
}

const reflectorB = "AY BR CU DH EQ FS GL IP JX KN MO TZ VW"

func kindOf(t *testing.T, err error) fault.Kind {
	t.Helper()
	k, ok := fault.KindOf(err)
	if !ok {
		t.Fatalf("expected fault error, got %v", err)
	}
	return k
}

func TestPlugboardInvolution(t *testing.T) {
	pb, err := NewPlugboard(letterPairs(t, "AB CD EZ"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < alphabet.Size; i++ {
		if got := pb.Encrypt(pb.Encrypt(i)); got != i {
			t.Fatalf("pb(pb(%d)) = %d", i, got)
		}
	}
	if pb.Encrypt(0) != 1 || pb.Encrypt(25) != 4 || pb.Encrypt(5) != 5 {
		t.Fatalf("unexpected mapping")
	}
}

func TestPlugboardEmptyIsIdentity(t *testing.T) {
	pb, err := NewPlugboard(nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < alphabet.Size; i++ {
		if pb.Encrypt(i) != i {
			t.Fatalf("empty plugboard moved %d", i)
		}
	}
}

func TestPlugboardRejects(t *testing.T) {
	cases := []struct {
		name  string
		pairs []Pair
		want  fault.Kind
	}{
		{"self", []Pair{{3, 3}}, fault.ImpossiblePlugboardConfiguration},
		{"reuse", []Pair{{0, 1}, {1, 2}}, fault.ImpossiblePlugboardConfiguration},
		{"reuse same pair", []Pair{{0, 1}, {1, 0}}, fault.ImpossiblePlugboardConfiguration},
		{"range high", []Pair{{0, 26}}, fault.InvalidIndex},
		{"range low", []Pair{{-1, 4}}, fault.InvalidIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlugboard(tc.pairs)
			if got := kindOf(t, err); got != tc.want {
				t.Fatalf("kind = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestPlugboardFullThirteenPairs(t *testing.T) {
	if _, err := NewPlugboard(letterPairs(t, reflectorB)); err != nil {
		t.Fatalf("13 disjoint pairs rejected: %v", err)
	}
}

func TestReflectorNoFixedPoint(t *testing.T) {
	rf, err := NewReflector(letterPairs(t, reflectorB))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < alphabet.Size; i++ {
		o := rf.Encrypt(i)
		if o == i {
			t.Fatalf("reflector fixed point at %d", i)
		}
		if rf.Encrypt(o) != i {
			t.Fatalf("reflector not an involution at %d", i)
		}
	}
}

func TestReflectorRejects(t *testing.T) {
	full := letterPairs(t, reflectorB)
	dup := append([]Pair(nil), full...)
	dup[12] = Pair{A: 0, B: 21} // A reused, W left unpaired
	self := append([]Pair(nil), full...)
	self[0] = Pair{A: 0, B: 0}

	cases := []struct {
		name  string
		pairs []Pair
		want  fault.Kind
	}{
		{"too few", full[:12], fault.IncorrectNumberOfReflectorParameters},
		{"none", nil, fault.IncorrectNumberOfReflectorParameters},
		{"duplicate", dup, fault.InvalidReflectorMapping},
		{"self", self, fault.InvalidReflectorMapping},
		{"range", append(full[:12:12], Pair{A: 21, B: 30}), fault.InvalidIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReflector(tc.pairs)
			if got := kindOf(t, err); got != tc.want {
				t.Fatalf("kind = %v; want %v (%v)", got, tc.want, err)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	got, err := Pairs([]int{0, 1, 2, 3}, fault.Plugboard)
	if err != nil || len(got) != 2 || got[1] != (Pair{2, 3}) {
		t.Fatalf("Pairs = %v, %v", got, err)
	}
	if _, err := Pairs([]int{0, 1, 2}, fault.Plugboard); kindOf(t, err) != fault.IncorrectNumberOfPlugboardParameters {
		t.Fatalf("odd plugboard count: %v", err)
	}
	if _, err := Pairs([]int{0, 1, 2}, fault.Reflector); kindOf(t, err) != fault.IncorrectNumberOfReflectorParameters {
		t.Fatalf("odd reflector count: %v", err)
	}
	if _, err := Pairs([]int{0, 99, 2}, fault.Plugboard); kindOf(t, err) != fault.InvalidIndex {
		t.Fatalf("range checked before count: %v", err)
	}
	if _, err := Pairs([]int{0, 0, 5}, fault.Plugboard); kindOf(t, err) != fault.ImpossiblePlugboardConfiguration {
		t.Fatalf("self pair checked before count: %v", err)
	}
	if _, err := Pairs([]int{0, 1, 0, 2, 3}, fault.Plugboard); kindOf(t, err) != fault.ImpossiblePlugboardConfiguration {
		t.Fatalf("reuse checked before count: %v", err)
	}
	if _, err := Pairs([]int{4, 4, 1}, fault.Reflector); kindOf(t, err) != fault.InvalidReflectorMapping {
		t.Fatalf("reflector self pair checked before count: %v", err)
	}
	if _, err := Pairs([]int{0, 0, 26}, fault.Plugboard); kindOf(t, err) != fault.ImpossiblePlugboardConfiguration {
		t.Fatalf("earlier pair wins over later range: %v", err)
	}
	if got, err := Pairs(nil, fault.Plugboard); err != nil || len(got) != 0 {
		t.Fatalf("empty: %v %v", got, err)
	}
}

func TestCheckPrefix(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		c      fault.Component
		want   fault.Kind
	}{
		{"clean with trailing value", []int{0, 1, 2}, fault.Plugboard, fault.None},
		{"self pair", []int{0, 0}, fault.Plugboard, fault.ImpossiblePlugboardConfiguration},
		{"reflector reuse", []int{0, 1, 1}, fault.Reflector, fault.None},
		{"reflector reuse complete", []int{0, 1, 1, 2}, fault.Reflector, fault.InvalidReflectorMapping},
		{"trailing range", []int{0, 1, 30}, fault.Plugboard, fault.InvalidIndex},
		{"empty", nil, fault.Reflector, fault.None},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckPrefix(tc.values, tc.c)
			if tc.want == fault.None {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if got := kindOf(t, err); got != tc.want {
				t.Fatalf("kind = %v; want %v", got, tc.want)
			}
		})
	}
}
