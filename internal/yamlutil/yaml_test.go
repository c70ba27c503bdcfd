package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshalOrderedPreservesOrder(t *testing.T) {
	input := []byte("zeta: 1\nalpha: 2\nmiddle: 3\n")
	pairs, err := UnmarshalOrdered(input)
	if err != nil {
		t.Fatalf("UnmarshalOrdered: %v", err)
	}

	var keys []string
	for _, p := range pairs {
		keys = append(keys, p.Key.(string))
	}
	want := "zeta,alpha,middle"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("key order = %q, want %q", got, want)
	}
}

func TestUnmarshalOrderedKeepsDuplicateKeys(t *testing.T) {
	input := []byte("a: 1\nb: 2\na: 3\n")
	pairs, err := UnmarshalOrdered(input)
	if err != nil {
		t.Fatalf("UnmarshalOrdered: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("pairs = %d, want 3 (duplicates kept)", len(pairs))
	}
	if pairs[0].Key != "a" || pairs[2].Key != "a" {
		t.Errorf("duplicate key lost: %+v", pairs)
	}
}

func TestUnmarshalOrderedNestedShapes(t *testing.T) {
	input := []byte(`
outer:
  inner: value
items:
  - one
  - sub: [a, b]
`)
	pairs, err := UnmarshalOrdered(input)
	if err != nil {
		t.Fatalf("UnmarshalOrdered: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("pairs = %+v", pairs)
	}

	nested, ok := pairs[0].Value.([]Pair)
	if !ok || len(nested) != 1 || nested[0].Key != "inner" {
		t.Errorf("nested mapping = %#v, want []Pair", pairs[0].Value)
	}

	seq, ok := pairs[1].Value.([]any)
	if !ok || len(seq) != 2 {
		t.Fatalf("sequence = %#v", pairs[1].Value)
	}
	if seq[0] != "one" {
		t.Errorf("seq[0] = %#v", seq[0])
	}
	// Mappings nested inside sequences convert too.
	if _, ok := seq[1].([]Pair); !ok {
		t.Errorf("seq[1] = %#v, want []Pair", seq[1])
	}
}

func TestUnmarshalOrderedErrors(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		if _, err := UnmarshalOrdered(nil); !errors.Is(err, ErrNilData) {
			t.Errorf("err = %v, want ErrNilData", err)
		}
	})

	t.Run("scalar root", func(t *testing.T) {
		if _, err := UnmarshalOrdered([]byte("just text\n")); !errors.Is(err, ErrNotMapping) {
			t.Errorf("err = %v, want ErrNotMapping", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		old := MaxInputSize
		MaxInputSize = 8
		defer func() { MaxInputSize = old }()
		if _, err := UnmarshalOrdered([]byte("a: too long\n")); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("err = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalOrderedCommentOnly(t *testing.T) {
	pairs, err := UnmarshalOrdered([]byte("# nothing\n"))
	if err != nil {
		t.Fatalf("UnmarshalOrdered: %v", err)
	}
	if pairs != nil {
		t.Errorf("pairs = %+v, want nil", pairs)
	}
}
