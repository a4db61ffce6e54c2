package lists_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fpe/lists"
)

func TestConstruction(t *testing.T) {
	tests := []struct {
		name string
		l    lists.List[int]
		want []int
	}{
		{"ZeroValue", lists.List[int]{}, []int{}},
		{"Empty", lists.Empty[int](), []int{}},
		{"OfNothing", lists.Of[int](), []int{}},
		{"Of", lists.Of(1, 2, 3), []int{1, 2, 3}},
		{"FromSlice", lists.FromSlice([]int{4, 5}), []int{4, 5}},
		{"FromSeq", lists.FromSeq(slices.Values([]int{7, 8, 9})), []int{7, 8, 9}},
		{"Range", lists.Range(0, 5, 1), []int{0, 1, 2, 3, 4}},
		{"RangeStep", lists.Range(1, 10, 3), []int{1, 4, 7}},
		{"RangeDown", lists.Range(3, 0, -1), []int{3, 2, 1}},
		{"RangeZeroStep", lists.Range(0, 5, 0), []int{}},
		{"Prepend", lists.Prepend(0, lists.Of(1, 2)), []int{0, 1, 2}},
		{"PrependMethod", lists.Of(2).Prepend(1), []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.l.ToSlice()); diff != "" {
				t.Errorf("elements mismatch (-want +got):\n%s", diff)
			}
			if tt.l.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", tt.l.Len(), len(tt.want))
			}
			if tt.l.IsEmpty() != (len(tt.want) == 0) {
				t.Errorf("IsEmpty() = %v, want %v", tt.l.IsEmpty(), len(tt.want) == 0)
			}
		})
	}
}

// Range must stop at the int bounds instead of wrapping around.
func TestRangeNearIntBounds(t *testing.T) {
	tests := []struct {
		name string
		l    lists.List[int]
		want []int
	}{
		{"StepPastMax", lists.Range(math.MaxInt-1, math.MaxInt, 2), []int{math.MaxInt - 1}},
		{"UpToMax", lists.Range(math.MaxInt-3, math.MaxInt, 1), []int{math.MaxInt - 3, math.MaxInt - 2, math.MaxInt - 1}},
		{"StepPastMin", lists.Range(math.MinInt+1, math.MinInt, -2), []int{math.MinInt + 1}},
		{"DownToMin", lists.Range(math.MinInt+2, math.MinInt, -1), []int{math.MinInt + 2, math.MinInt + 1}},
		{"WholeIntRange", lists.Range(math.MinInt, math.MaxInt, math.MaxInt), []int{math.MinInt, -1, math.MaxInt - 1}},
		{"MinStep", lists.Range(math.MaxInt, math.MinInt, math.MinInt), []int{math.MaxInt, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.l.ToSlice()); diff != "" {
				t.Errorf("elements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []int{1, 2, 3}
	l := lists.FromSlice(src)
	src[0] = 100
	if v, _ := l.Head(); v != 1 {
		t.Errorf("Head() = %d after writing to source slice, want 1", v)
	}
}

func TestPrependDoesNotModify(t *testing.T) {
	base := lists.Of(1, 2, 3)
	_ = base.Prepend(0)
	_ = lists.Prepend(-1, base)
	if got := base.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("base changed after Prepend: got %v", got)
	}
}

func TestHead(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := lists.Empty[string]().Head()
		if !errors.Is(err, lists.ErrEmptyList) {
			t.Errorf("Head() error = %v, want ErrEmptyList", err)
		}
	})

	t.Run("NonEmpty", func(t *testing.T) {
		v, err := lists.Of("a", "b").Head()
		if err != nil || v != "a" {
			t.Errorf("Head() = %q, %v; want \"a\", nil", v, err)
		}
	})

	t.Run("NilElementIsNotEmpty", func(t *testing.T) {
		l := lists.Of[*int](nil)
		if l.IsEmpty() {
			t.Fatal("a list holding a nil element must not be empty")
		}
		v, err := l.Head()
		if err != nil || v != nil {
			t.Errorf("Head() = %v, %v; want nil, nil", v, err)
		}
	})
}

func TestTail(t *testing.T) {
	tests := []struct {
		name string
		l    lists.List[int]
		want []int
	}{
		{"Empty", lists.Empty[int](), []int{}},
		{"Single", lists.Of(1), []int{}},
		{"Many", lists.Of(1, 2, 3), []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.l.Tail()
			if !slices.Equal(got.ToSlice(), tt.want) {
				t.Errorf("Tail() = %v, want %v", got, tt.want)
			}
			if got.IsEmpty() != (len(tt.want) == 0) {
				t.Errorf("Tail().IsEmpty() = %v", got.IsEmpty())
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name        string
		l           lists.List[int]
		wantBracket string
		wantArrow   string
	}{
		{"Empty", lists.Empty[int](), "[]", "[]"},
		{"Single", lists.Of(5), "[5]", "5"},
		{"Many", lists.Of(1, 4, 9, 16, 25), "[1, 4, 9, 16, 25]", "1 -> 4 -> 9 -> 16 -> 25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.wantBracket {
				t.Errorf("String() = %q, want %q", got, tt.wantBracket)
			}
			if got := tt.l.Arrow(); got != tt.wantArrow {
				t.Errorf("Arrow() = %q, want %q", got, tt.wantArrow)
			}
			if got := tt.l.Render(lists.Arrow); got != tt.wantArrow {
				t.Errorf("Render(Arrow) = %q, want %q", got, tt.wantArrow)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    lists.Style
		wantErr bool
	}{
		{"", lists.Bracket, false},
		{"bracket", lists.Bracket, false},
		{" Arrow ", lists.Arrow, false},
		{"json", lists.Bracket, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := lists.ParseStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, lists.ErrUnknownStyle) {
				t.Errorf("ParseStyle(%q) error = %v, want ErrUnknownStyle", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIterators(t *testing.T) {
	l := lists.Of(10, 20, 30)

	if got := slices.Collect(l.Values()); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("Values() = %v", got)
	}

	var idx []int
	for i, v := range l.Enumerate() {
		if v != (i+1)*10 {
			t.Errorf("Enumerate() yielded (%d, %d)", i, v)
		}
		idx = append(idx, i)
	}
	if !slices.Equal(idx, []int{0, 1, 2}) {
		t.Errorf("Enumerate() indexes = %v", idx)
	}

	// early break
	var first []int
	for v := range l.Values() {
		first = append(first, v)
		break
	}
	if !slices.Equal(first, []int{10}) {
		t.Errorf("break after first: got %v", first)
	}
}

func TestReverseAndEqual(t *testing.T) {
	l := lists.Of(1, 2, 3)
	if got := l.Reverse(); !lists.Equal(got, lists.Of(3, 2, 1)) {
		t.Errorf("Reverse() = %v", got)
	}
	if !lists.Equal(lists.Empty[int](), lists.Of[int]()) {
		t.Error("empty lists should be equal")
	}
	if lists.Equal(lists.Of(1, 2), lists.Of(1, 2, 3)) {
		t.Error("lists of different length should not be equal")
	}
	if lists.Equal(lists.Of(1, 2), lists.Of(1, 3)) {
		t.Error("lists with different elements should not be equal")
	}
	strs := lists.Of("1", "2")
	if !lists.EqualFunc(l.Take(2), strs, func(a int, b string) bool { return string(rune('0'+a)) == b }) {
		t.Error("EqualFunc should compare across element types")
	}
}
