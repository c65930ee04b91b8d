package medical

import (
	"errors"
	"math"
)

// GlucoseMgPerMmol converts glucose between mmol/L and mg/dL.
const GlucoseMgPerMmol = 18.0182

// Errors returned when an input would divide by zero.
var (
	// ErrZeroHeight is returned by BMI.
	ErrZeroHeight = errors.New("height_m must not be zero")

	// ErrZeroSHBG is returned by FreeAndrogenIndex.
	ErrZeroSHBG = errors.New("shbg must not be zero")

	// ErrZeroTDD is returned by InsulinCorrectionFactor and InsulinToCarbRatio.
	ErrZeroTDD = errors.New("tdd must not be zero")

	// ErrZeroCreatinine is returned by EGFR.
	ErrZeroCreatinine = errors.New("creatinine must not be zero")

	// ErrZeroAge is returned by EGFR.
	ErrZeroAge = errors.New("age must not be zero")
)

// FructosamineToHbA1c estimates HbA1c (%) from fructosamine (µmol/L).
func FructosamineToHbA1c(fructosamine int64) float64 {
	return 0.017*float64(fructosamine) + 1.61
}

// EstimatedAverageGlucose converts HbA1c (%) to eAG in mg/dL.
func EstimatedAverageGlucose(hba1c float64) float64 {
	return 28.7*hba1c - 46.7
}

// EAGToHbA1c converts eAG in mg/dL to HbA1c (%).
func EAGToHbA1c(eagMgDl float64) float64 {
	return (eagMgDl + 46.7) / 28.7
}

// GlucoseMmolToMg converts glucose from mmol/L to mg/dL.
func GlucoseMmolToMg(mmol float64) float64 {
	return mmol * GlucoseMgPerMmol
}

// GlucoseMgToMmol converts glucose from mg/dL to mmol/L.
func GlucoseMgToMmol(mg float64) float64 {
	return mg / GlucoseMgPerMmol
}

// BMI returns weight / height² in kg/m².
func BMI(weightKg, heightM float64) (float64, error) {
	if heightM == 0 {
		return 0, ErrZeroHeight
	}
	return weightKg / (heightM * heightM), nil
}

// IdealBodyWeight returns the Devine ideal body weight in kg.
func IdealBodyWeight(heightCm float64, isMale bool) float64 {
	base := 45.5
	if isMale {
		base = 50
	}
	heightIn := heightCm / 2.54
	return base + 2.3*(heightIn-60)
}

// CorrectedCalcium adjusts total calcium (mg/dL) for albumin (g/dL).
func CorrectedCalcium(calcium, albumin float64) float64 {
	return calcium + 0.8*(4.0-albumin)
}

// FreeAndrogenIndex returns total testosterone / SHBG × 100, both in nmol/L.
func FreeAndrogenIndex(totalTestosterone, shbg float64) (float64, error) {
	if shbg == 0 {
		return 0, ErrZeroSHBG
	}
	return totalTestosterone / shbg * 100, nil
}

// InsulinCorrectionFactor applies the 1800 rule to a total daily dose.
func InsulinCorrectionFactor(tdd float64) (float64, error) {
	if tdd == 0 {
		return 0, ErrZeroTDD
	}
	return 1800 / tdd, nil
}

// InsulinToCarbRatio applies the 450 rule to a total daily dose.
func InsulinToCarbRatio(tdd float64) (float64, error) {
	if tdd == 0 {
		return 0, ErrZeroTDD
	}
	return 450 / tdd, nil
}

// EGFR returns the MDRD estimated glomerular filtration rate in
// mL/min/1.73m² from serum creatinine in mg/dL.
func EGFR(creatinine float64, age int64, isMale, isBlack bool) (float64, error) {
	if creatinine == 0 {
		return 0, ErrZeroCreatinine
	}
	if age == 0 {
		return 0, ErrZeroAge
	}
	egfr := 175 * math.Pow(creatinine, -1.154) * math.Pow(float64(age), -0.203)
	if !isMale {
		egfr *= 0.742
	}
	if isBlack {
		egfr *= 1.212
	}
	return egfr, nil
}
