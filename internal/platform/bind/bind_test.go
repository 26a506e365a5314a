package bind

import (
	"strings"
	"testing"

	perr "kundali/internal/platform/errors"
)

type pairReq struct {
	MoonNakshatra int  `json:"moon_nakshatra" validate:"min=0,max=26"`
	MoonRashi     int  `json:"moon_rashi" validate:"min=0,max=11"`
	Ascendant     int  `json:"ascendant" validate:"min=0,max=11"`
	MarsHouse     *int `json:"mars_house,omitempty" validate:"omitempty,min=1,max=12"`
}

func TestParseJSON_OK(t *testing.T) {
	in := `{"moon_nakshatra": 3, "moon_rashi": 1, "ascendant": 0, "mars_house": 7}`
	got, err := ParseJSON[pairReq](strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.MoonNakshatra != 3 || got.MarsHouse == nil || *got.MarsHouse != 7 {
		t.Fatalf("bad decode: %+v", got)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	in := `{"moon_nakshatra": 3, "moon_rashi": 1, "ascendant": 0, "bogus": 1}`
	_, err := ParseJSON[pairReq](strings.NewReader(in))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_EmptyAndTrailing(t *testing.T) {
	if _, err := ParseJSON[pairReq](strings.NewReader("")); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty: want JSON error, got %v", err)
	}
	in := `{"moon_nakshatra": 3, "moon_rashi": 1, "ascendant": 0} {"again": true}`
	if _, err := ParseJSON[pairReq](strings.NewReader(in)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing: want JSON error, got %v", err)
	}
}

func TestParseJSON_ValidationFieldNames(t *testing.T) {
	in := `{"moon_nakshatra": 27, "moon_rashi": 1, "ascendant": 0}`
	_, err := ParseJSON[pairReq](strings.NewReader(in))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want Validation error, got %v", err)
	}
	if got := perr.FieldOf(err); got != "moon_nakshatra" {
		t.Fatalf("field = %q, want moon_nakshatra (json tag name)", got)
	}

	// optional field still range-checked when present
	in2 := `{"moon_nakshatra": 5, "moon_rashi": 1, "ascendant": 0, "mars_house": 13}`
	_, err2 := ParseJSON[pairReq](strings.NewReader(in2))
	if perr.FieldOf(err2) != "mars_house" {
		t.Fatalf("field = %q, want mars_house", perr.FieldOf(err2))
	}
}

func TestValidateDirect(t *testing.T) {
	bad := pairReq{MoonNakshatra: -1}
	err := Validate(bad)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want Validation error, got %v", err)
	}
	ok := pairReq{MoonNakshatra: 0, MoonRashi: 0, Ascendant: 0}
	if err := Validate(ok); err != nil {
		t.Fatalf("Validate(ok) = %v", err)
	}
}
