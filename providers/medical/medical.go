package medical

import (
	"fmt"

	"github.com/leofalp/medcalc/core/operation"
)

// Operation names. They are the wire contract and must not change.
const (
	OpFructosamineToHbA1c     = "fructosamine_to_hba1c"
	OpEstimatedAverageGlucose = "estimated_average_glucose"
	OpEAGToHbA1c              = "eag_to_hba1c"
	OpGlucoseMmolToMg         = "glucose_unit_conversion_mmol_to_mg"
	OpGlucoseMgToMmol         = "glucose_unit_conversion_mg_to_mmol"
	OpBMI                     = "bmi_calculator"
	OpIdealBodyWeight         = "ideal_body_weight"
	OpCorrectedCalcium        = "corrected_calcium"
	OpFreeAndrogenIndex       = "free_androgen_index"
	OpInsulinCorrectionFactor = "insulin_correction_factor"
	OpInsulinToCarbRatio      = "insulin_to_carb_ratio"
	OpEGFR                    = "calculate_egfr"
)

// Entries returns every medical operation in registration order.
func Entries() []operation.Entry {
	return []operation.Entry{
		operation.NewEntry(OpFructosamineToHbA1c,
			"Converts fructosamine to Hemoglobin A1c",
			func(a operation.Args) (float64, error) {
				return FructosamineToHbA1c(a.Integer(0)), nil
			},
			operation.Param("fructosamine", operation.Integer, "Fructosamine in µmol/L"),
		),
		operation.NewEntry(OpEstimatedAverageGlucose,
			"Converts HbA1c to estimated average glucose (eAG) in mg/dL",
			func(a operation.Args) (float64, error) {
				return EstimatedAverageGlucose(a.Number(0)), nil
			},
			operation.Param("hba1c", operation.Number, "HbA1c in %"),
		),
		operation.NewEntry(OpEAGToHbA1c,
			"Converts estimated average glucose (eAG) in mg/dL to HbA1c",
			func(a operation.Args) (float64, error) {
				return EAGToHbA1c(a.Number(0)), nil
			},
			operation.Param("eag_mg_dl", operation.Number, "Estimated average glucose in mg/dL"),
		),
		operation.NewEntry(OpGlucoseMmolToMg,
			"Converts glucose from mmol/L to mg/dL",
			func(a operation.Args) (float64, error) {
				return GlucoseMmolToMg(a.Number(0)), nil
			},
			operation.Param("glucose_mmol", operation.Number, "Glucose in mmol/L"),
		),
		operation.NewEntry(OpGlucoseMgToMmol,
			"Converts glucose from mg/dL to mmol/L",
			func(a operation.Args) (float64, error) {
				return GlucoseMgToMmol(a.Number(0)), nil
			},
			operation.Param("glucose_mg", operation.Number, "Glucose in mg/dL"),
		),
		operation.NewEntry(OpBMI,
			"Calculates Body Mass Index (BMI)",
			func(a operation.Args) (float64, error) {
				return BMI(a.Number(0), a.Number(1))
			},
			operation.Param("weight_kg", operation.Number, "Body weight in kg"),
			operation.Param("height_m", operation.Number, "Height in metres"),
		),
		operation.NewEntry(OpIdealBodyWeight,
			"Calculates Ideal Body Weight (IBW) in kg using the Devine formula",
			func(a operation.Args) (float64, error) {
				return IdealBodyWeight(a.Number(0), a.Boolean(1)), nil
			},
			operation.Param("height_cm", operation.Number, "Height in cm"),
			operation.Param("is_male", operation.Boolean, "True for male patients"),
		),
		operation.NewEntry(OpCorrectedCalcium,
			"Calculates corrected calcium level",
			func(a operation.Args) (float64, error) {
				return CorrectedCalcium(a.Number(0), a.Number(1)), nil
			},
			operation.Param("calcium", operation.Number, "Measured calcium in mg/dL"),
			operation.Param("albumin", operation.Number, "Albumin in g/dL"),
		),
		operation.NewEntry(OpFreeAndrogenIndex,
			"Calculates Free Androgen Index (FAI)",
			func(a operation.Args) (float64, error) {
				return FreeAndrogenIndex(a.Number(0), a.Number(1))
			},
			operation.Param("total_testosterone", operation.Number, "Total testosterone in nmol/L"),
			operation.Param("shbg", operation.Number, "Sex hormone-binding globulin in nmol/L"),
		),
		operation.NewEntry(OpInsulinCorrectionFactor,
			"Calculates insulin correction factor (ICF) or insulin sensitivity factor",
			func(a operation.Args) (float64, error) {
				return InsulinCorrectionFactor(a.Number(0))
			},
			operation.Param("tdd", operation.Number, "Total daily insulin dose in units"),
		),
		operation.NewEntry(OpInsulinToCarbRatio,
			"Calculates insulin to carbohydrate ratio (I:C)",
			func(a operation.Args) (float64, error) {
				return InsulinToCarbRatio(a.Number(0))
			},
			operation.Param("tdd", operation.Number, "Total daily insulin dose in units"),
		),
		operation.NewEntry(OpEGFR,
			"Calculates estimated Glomerular Filtration Rate (eGFR) using the MDRD formula",
			func(a operation.Args) (float64, error) {
				return EGFR(a.Number(0), a.Integer(1), a.Boolean(2), a.Boolean(3))
			},
			operation.Param("creatinine", operation.Number, "Serum creatinine in mg/dL"),
			operation.Param("age", operation.Integer, "Age in years"),
			operation.Param("is_male", operation.Boolean, "True for male patients"),
			operation.Param("is_black", operation.Boolean, "True for Black patients"),
		),
	}
}

// Register adds every medical operation to r. It stops at the first
// failure, which is DuplicateOperation when r already holds one of the names.
func Register(r *operation.Registry) error {
	for _, e := range Entries() {
		if err := r.Register(e); err != nil {
			return fmt.Errorf("register %s: %w", e.Name, err)
		}
	}
	return nil
}

// NewRegistry builds a registry holding exactly the medical operations.
func NewRegistry() (*operation.Registry, error) {
	return operation.Build(Entries()...)
}
