package facts

import (
	"strings"
	"testing"
)

func TestDefault_Count(t *testing.T) {
	b := Default()
	if b.Len() != 200 {
		t.Errorf("got %d facts, want 200", b.Len())
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		if got := len(b.ByLevel(level)); got != 20 {
			t.Errorf("ByLevel(%d): got %d facts, want 20", level, got)
		}
	}
}

func TestDefault_DivideInvariant(t *testing.T) {
	for _, f := range Default().All() {
		switch f.Op {
		case Divide:
			if f.A != f.B*f.Answer {
				t.Errorf("%s: %d != %d * %d", f.ID, f.A, f.B, f.Answer)
			}
		case Multiply:
			if f.Answer != f.A*f.B {
				t.Errorf("%s: %d != %d * %d", f.ID, f.Answer, f.A, f.B)
			}
		default:
			t.Errorf("%s: unexpected operator %q", f.ID, f.Op)
		}
	}
}

func TestBelow(t *testing.T) {
	b := Default()
	if got := b.Below(1); len(got) != 0 {
		t.Errorf("Below(1): got %d facts, want 0", len(got))
	}
	got := b.Below(4)
	if len(got) != 60 {
		t.Fatalf("Below(4): got %d facts, want 60", len(got))
	}
	for _, f := range got {
		if f.Level >= 4 {
			t.Errorf("Below(4) returned level %d fact %s", f.Level, f.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	f, ok := Default().Lookup("d:12/4")
	if !ok {
		t.Fatal("d:12/4 not found")
	}
	if f.Answer != 3 || f.Level != 4 {
		t.Errorf("got answer %d level %d, want 3 and 4", f.Answer, f.Level)
	}
	if _, ok := Default().Lookup("m:99x99"); ok {
		t.Error("m:99x99 should not be in the catalog")
	}
}

func TestResolve_RebuildsUnknown(t *testing.T) {
	f, err := Default().Resolve("m:11x12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Op != Multiply || f.Answer != 132 {
		t.Errorf("got %+v, want multiply with answer 132", f)
	}
}

func TestNew_RejectsBadDivide(t *testing.T) {
	_, err := New([]Fact{{ID: "bad", Op: Divide, A: 13, B: 4, Answer: 3, Level: 1}})
	if err == nil {
		t.Fatal("expected error for inconsistent divide fact")
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	f := Fact{ID: "x", Op: Multiply, A: 2, B: 3, Answer: 6, Level: 2}
	g := Fact{ID: "x", Op: Multiply, A: 3, B: 2, Answer: 6, Level: 3}
	if _, err := New([]Fact{f, g}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); err != ErrEmptyCatalog {
		t.Errorf("got %v, want ErrEmptyCatalog", err)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	raw := []byte(`{"facts":[{"id":"a","op":"add","a":1,"b":1,"answer":2,"level":1}]}`)
	_, err := Load(raw)
	if err == nil {
		t.Fatal("expected schema error")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSignature_RoundTrip(t *testing.T) {
	tests := []struct {
		sig  Signature
		op   Operator
		a, b int
	}{
		{"m:6x7", Multiply, 6, 7},
		{"d:12/4", Divide, 12, 4},
	}
	for _, tt := range tests {
		op, a, b, err := tt.sig.Parse()
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.sig, err)
		}
		if op != tt.op || a != tt.a || b != tt.b {
			t.Errorf("Parse(%q) = %s %d %d", tt.sig, op, a, b)
		}
		if got := NewSignature(op, a, b); got != tt.sig {
			t.Errorf("NewSignature = %q, want %q", got, tt.sig)
		}
	}
}

func TestSignature_ParseInvalid(t *testing.T) {
	for _, s := range []Signature{"", "x:1x2", "m:1/2", "m:ax2", "d:5/0", "d:7/2"} {
		if _, _, _, err := s.Parse(); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}
