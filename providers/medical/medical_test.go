package medical

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/leofalp/medcalc/core/invoke"
	"github.com/leofalp/medcalc/core/operation"
)

const tolerance = 1e-9

func newDispatcher(t *testing.T) *invoke.Dispatcher {
	t.Helper()
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return invoke.New(r)
}

func TestRegistry_ListsAllOperationsInOrder(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	want := []string{
		"fructosamine_to_hba1c",
		"estimated_average_glucose",
		"eag_to_hba1c",
		"glucose_unit_conversion_mmol_to_mg",
		"glucose_unit_conversion_mg_to_mmol",
		"bmi_calculator",
		"ideal_body_weight",
		"corrected_calcium",
		"free_androgen_index",
		"insulin_correction_factor",
		"insulin_to_carb_ratio",
		"calculate_egfr",
	}

	var got []string
	for sig := range r.List() {
		got = append(got, sig.Name)
		if sig.Returns != operation.Number {
			t.Errorf("%s returns %s, want number", sig.Name, sig.Returns)
		}
		if sig.Description == "" {
			t.Errorf("%s has no description", sig.Name)
		}
		if Notes(sig.Name) == "" {
			t.Errorf("%s has no reference notes", sig.Name)
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRegistry_ListIsRestartable(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	first := slices.Collect(r.List())
	second := slices.Collect(r.List())
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || len(first[i].Parameters) != len(second[i].Parameters) {
			t.Errorf("entry %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestRegister_Twice(t *testing.T) {
	r := operation.NewRegistry()
	if err := Register(r); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := Register(r)
	if !errors.Is(err, operation.ErrDuplicateOperation) {
		t.Fatalf("second Register = %v, want DuplicateOperation", err)
	}
	if r.Len() != len(Entries()) {
		t.Errorf("registry size changed to %d", r.Len())
	}
}

func TestSignatures(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	tests := []struct {
		op     string
		params []operation.Parameter
	}{
		{OpFructosamineToHbA1c, []operation.Parameter{{Name: "fructosamine", Kind: operation.Integer}}},
		{OpBMI, []operation.Parameter{{Name: "weight_kg", Kind: operation.Number}, {Name: "height_m", Kind: operation.Number}}},
		{OpIdealBodyWeight, []operation.Parameter{{Name: "height_cm", Kind: operation.Number}, {Name: "is_male", Kind: operation.Boolean}}},
		{OpEGFR, []operation.Parameter{
			{Name: "creatinine", Kind: operation.Number},
			{Name: "age", Kind: operation.Integer},
			{Name: "is_male", Kind: operation.Boolean},
			{Name: "is_black", Kind: operation.Boolean},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			e, err := r.Lookup(tt.op)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if len(e.Parameters) != len(tt.params) {
				t.Fatalf("got %d parameters, want %d", len(e.Parameters), len(tt.params))
			}
			for i, p := range tt.params {
				if e.Parameters[i].Name != p.Name || e.Parameters[i].Kind != p.Kind {
					t.Errorf("parameter %d = %s:%s, want %s:%s", i, e.Parameters[i].Name, e.Parameters[i].Kind, p.Name, p.Kind)
				}
			}
		})
	}
}

func TestFormulas(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name string
		op   string
		args map[string]any
		want float64
	}{
		{"fructosamine", OpFructosamineToHbA1c, map[string]any{"fructosamine": 300}, 6.71},
		{"fructosamine whole float", OpFructosamineToHbA1c, map[string]any{"fructosamine": 300.0}, 6.71},
		{"eag", OpEstimatedAverageGlucose, map[string]any{"hba1c": 7}, 154.2},
		{"eag to hba1c", OpEAGToHbA1c, map[string]any{"eag_mg_dl": 154.2}, 7},
		{"mmol to mg", OpGlucoseMmolToMg, map[string]any{"glucose_mmol": 5.5}, 99.1001},
		{"mg to mmol", OpGlucoseMgToMmol, map[string]any{"glucose_mg": 18.0182}, 1},
		{"bmi", OpBMI, map[string]any{"weight_kg": 70, "height_m": 1.75}, 22.857142857142858},
		{"bmi from strings", OpBMI, map[string]any{"weight_kg": "70", "height_m": "1.75"}, 22.857142857142858},
		{"ibw male", OpIdealBodyWeight, map[string]any{"height_cm": 180, "is_male": true}, 50 + 2.3*(180/2.54-60)},
		{"ibw female", OpIdealBodyWeight, map[string]any{"height_cm": 160, "is_male": false}, 45.5 + 2.3*(160/2.54-60)},
		{"corrected calcium", OpCorrectedCalcium, map[string]any{"calcium": 9.0, "albumin": 3.0}, 9.8},
		{"fai", OpFreeAndrogenIndex, map[string]any{"total_testosterone": 10, "shbg": 40}, 25},
		{"icf", OpInsulinCorrectionFactor, map[string]any{"tdd": 50}, 36},
		{"icr", OpInsulinToCarbRatio, map[string]any{"tdd": 50}, 9},
		{"egfr male", OpEGFR, map[string]any{"creatinine": 1.0, "age": 50, "is_male": true, "is_black": false}, 175 * math.Pow(50, -0.203)},
		{"egfr female black", OpEGFR, map[string]any{"creatinine": 1.2, "age": 55, "is_male": false, "is_black": true}, 175 * math.Pow(1.2, -1.154) * math.Pow(55, -0.203) * 0.742 * 1.212},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Call(ctx, tt.op, tt.args)
			if err != nil {
				t.Fatalf("Call(%s): %v", tt.op, err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("%s = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}

func TestBMI_Exact(t *testing.T) {
	got, err := newDispatcher(t).Call(context.Background(), OpBMI, map[string]any{
		"weight_kg": json.Number("70"),
		"height_m":  json.Number("1.75"),
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 22.857142857142858 {
		t.Errorf("bmi = %v, want 22.857142857142858", got)
	}
}

func TestIdealBodyWeight_MaleExceedsFemaleByConstant(t *testing.T) {
	for _, cm := range []float64{150, 165.5, 180, 200} {
		diff := IdealBodyWeight(cm, true) - IdealBodyWeight(cm, false)
		if math.Abs(diff-4.5) > tolerance {
			t.Errorf("height %v: male - female = %v, want 4.5", cm, diff)
		}
	}
}

func TestEGFR_Deterministic(t *testing.T) {
	a, errA := EGFR(1.1, 60, false, false)
	b, errB := EGFR(1.1, 60, false, false)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("EGFR not deterministic: %v vs %v", a, b)
	}
}

func TestComputationErrors(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		op    string
		args  map[string]any
		cause error
	}{
		{"bmi zero height", OpBMI, map[string]any{"weight_kg": 70, "height_m": 0}, ErrZeroHeight},
		{"fai zero shbg", OpFreeAndrogenIndex, map[string]any{"total_testosterone": 10, "shbg": 0}, ErrZeroSHBG},
		{"icf zero tdd", OpInsulinCorrectionFactor, map[string]any{"tdd": 0}, ErrZeroTDD},
		{"icr zero tdd", OpInsulinToCarbRatio, map[string]any{"tdd": 0.0}, ErrZeroTDD},
		{"egfr zero creatinine", OpEGFR, map[string]any{"creatinine": 0, "age": 50, "is_male": true, "is_black": false}, ErrZeroCreatinine},
		{"egfr zero age", OpEGFR, map[string]any{"creatinine": 1.0, "age": 0, "is_male": true, "is_black": false}, ErrZeroAge},
		{"egfr negative creatinine", OpEGFR, map[string]any{"creatinine": -1.0, "age": 50, "is_male": true, "is_black": false}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Call(ctx, tt.op, tt.args)
			if !errors.Is(err, operation.ErrComputation) {
				t.Fatalf("err = %v, want ComputationError", err)
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("err = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestNoClamping(t *testing.T) {
	got, err := newDispatcher(t).Call(context.Background(), OpBMI, map[string]any{"weight_kg": -70, "height_m": -1.75})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if math.Abs(got-(-70/(1.75*1.75))) > tolerance {
		t.Errorf("bmi = %v", got)
	}
}

func TestValidationErrors(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		op        string
		args      map[string]any
		kind      operation.ErrorKind
		parameter string
	}{
		{"unknown operation", "unknown_op", map[string]any{"x": 1}, operation.UnknownOperation, ""},
		{"missing height", OpBMI, map[string]any{"weight_kg": 70}, operation.MissingArgument, "height_m"},
		{"unexpected extra", OpBMI, map[string]any{"weight_kg": 70, "height_m": 1.75, "extra": 1}, operation.UnexpectedArgument, "extra"},
		{"fractional fructosamine", OpFructosamineToHbA1c, map[string]any{"fructosamine": 50.5}, operation.TypeMismatch, "fructosamine"},
		{"numeric is_male", OpIdealBodyWeight, map[string]any{"height_cm": 180, "is_male": 1}, operation.TypeMismatch, "is_male"},
		{"hex tdd", OpInsulinCorrectionFactor, map[string]any{"tdd": "0x1p4"}, operation.TypeMismatch, "tdd"},
		{"fractional age", OpEGFR, map[string]any{"creatinine": 1.0, "age": 50.5, "is_male": true, "is_black": false}, operation.TypeMismatch, "age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Invoke(ctx, invoke.Request{Operation: tt.op, Arguments: tt.args})
			if res.Ok() {
				t.Fatalf("expected failure, got %v", res.Value)
			}
			if res.Err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", res.Err.Kind, tt.kind)
			}
			if res.Err.Parameter != tt.parameter {
				t.Errorf("parameter = %q, want %q", res.Err.Parameter, tt.parameter)
			}
		})
	}
}
