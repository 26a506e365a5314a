package errors

import (
	stderrs "errors"
	"testing"
)

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeConfig, "table gap")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeConfig {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	if got := e3.Error(); got != "table gap: root" {
		t.Fatalf("Wrap().Error = %q", got)
	}
	e4 := Wrapf(src, ErrorCodeUnknown, "op %s", "x")
	if got := e4.Error(); got != "op x: root" {
		t.Fatalf("Wrapf().Error = %q", got)
	}
}

func TestValidationfCarriesField(t *testing.T) {
	err := Validationf("moon_nakshatra", "index 42 out of range")
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("IsCode = false, want Validation")
	}
	if FieldOf(err) != "moon_nakshatra" {
		t.Fatalf("FieldOf = %q", FieldOf(err))
	}
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Field != "moon_nakshatra" {
		t.Fatalf("WireFrom = %+v", w)
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeValidation, "out of range")
	withF := WithField(base, "ascendant")
	if FieldOf(base) != "" {
		t.Fatalf("WithField mutated the original")
	}
	if FieldOf(withF) != "ascendant" {
		t.Fatalf("WithField did not set field: %q", FieldOf(withF))
	}

	withOp := WithOp(withF, "milan.Match")
	pe, ok := As(withOp)
	if !ok || pe.Op() != "milan.Match" {
		t.Fatalf("WithOp lost op: %+v", pe)
	}
	// field survives the op mutation
	if pe.Field() != "ascendant" {
		t.Fatalf("field dropped by WithOp: %q", pe.Field())
	}

	// foreign errors pass through unchanged
	foreign := stderrs.New("foreign")
	if got := WithField(foreign, "x"); got != foreign {
		t.Fatalf("WithField should not wrap foreign errors")
	}
}

func TestWireFromForeignError(t *testing.T) {
	w := WireFrom(stderrs.New("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
	if z := WireFrom(nil); z != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", z)
	}
}
