// Package medical provides the endocrinology and renal formulas exposed by
// medcalc: HbA1c and glucose conversions, BMI, ideal body weight, corrected
// calcium, free androgen index, insulin dosing rules and MDRD eGFR.
//
// Each formula is available as a plain Go function and as an
// [operation.Entry]; [Register] installs every entry into a registry in a
// fixed order. Inputs are not clamped to physiological ranges. Formulas
// report an error only when they are mathematically undefined (a zero
// divisor or a zero base raised to a negative power).
package medical
