package medical

// notes holds the reference text for each operation as HTML fragments.
var notes = map[string]string{
	OpFructosamineToHbA1c: `<p>HbA1c (%) = 0.017 &times; fructosamine (&micro;mol/L) + 1.61</p>
<p>The fructosamine value must be a whole number.</p>`,
	OpEstimatedAverageGlucose: `<p>eAG (mg/dL) = 28.7 &times; HbA1c &minus; 46.7</p>`,
	OpEAGToHbA1c:              `<p>HbA1c = (eAG + 46.7) / 28.7</p>`,
	OpGlucoseMmolToMg:         `<p>mg/dL = mmol/L &times; 18.0182</p>`,
	OpGlucoseMgToMmol:         `<p>mmol/L = mg/dL / 18.0182</p>`,
	OpBMI: `<p>BMI = weight (kg) / height<sup>2</sup> (m)</p>
<p>Fails with <code>ComputationError</code> when <code>height_m</code> is 0.</p>`,
	OpIdealBodyWeight: `<p>Devine formula, with height converted to inches (cm / 2.54):</p>
<ul>
<li>Males: IBW = 50 + 2.3 &times; (height in inches &minus; 60)</li>
<li>Females: IBW = 45.5 + 2.3 &times; (height in inches &minus; 60)</li>
</ul>`,
	OpCorrectedCalcium: `<p>Corrected calcium (mg/dL) = measured calcium (mg/dL) + 0.8 &times; (4.0 &minus; albumin (g/dL))</p>`,
	OpFreeAndrogenIndex: `<p>FAI = (total testosterone / SHBG) &times; 100</p>
<ul>
<li>total testosterone in nmol/L</li>
<li>SHBG in nmol/L</li>
</ul>
<p>Fails with <code>ComputationError</code> when <code>shbg</code> is 0.</p>`,
	OpInsulinCorrectionFactor: `<p>ICF = 1800 / TDD (the <em>1800 rule</em>)</p>
<p>Fails with <code>ComputationError</code> when <code>tdd</code> is 0.</p>`,
	OpInsulinToCarbRatio: `<p>I:C = 450 / TDD (the <em>450 rule</em>)</p>
<p>Fails with <code>ComputationError</code> when <code>tdd</code> is 0.</p>`,
	OpEGFR: `<p>eGFR = 175 &times; Scr<sup>&minus;1.154</sup> &times; Age<sup>&minus;0.203</sup> &times; (0.742 if female) &times; (1.212 if Black)</p>
<p>Scr is serum creatinine in mg/dL. Fails with <code>ComputationError</code> when <code>creatinine</code> or <code>age</code> is 0.</p>`,
}

// Notes returns the HTML reference fragment for an operation, or "" when
// none is recorded.
func Notes(name string) string {
	return notes[name]
}
