package math

// =============================================================================
// Constants for mathematical functions
// =============================================================================

// expParams holds the range-reduction constants for one precision.
type expParams struct {
	ln2Hi, ln2Lo, invLn2 float64
	overflow, underflow  float64
	// minK and maxK bound the 2^k scale to normal exponents.
	minK, maxK float64
	// degree of the Horner polynomial in expPoly.
	degree int
}

// Float32 constants for Exp
var expF32 = expParams{
	ln2Hi:     0.693359375,
	ln2Lo:     -2.12194440e-4,
	invLn2:    1.44269504088896341,
	overflow:  88.72283905206835,
	underflow: -87.33654475055310,
	minK:      -126,
	maxK:      127,
	degree:    6,
}

// Float64 constants for Exp
var expF64 = expParams{
	ln2Hi:     0.6931471803691238,
	ln2Lo:     1.9082149292705877e-10,
	invLn2:    1.4426950408889634,
	overflow:  709.782712893384,
	underflow: -708.3964185322641,
	minK:      -1022,
	maxK:      1023,
	degree:    11,
}

// expPoly holds the Taylor coefficients 1/i! of e^r.
var expPoly = [...]float64{
	1.0,
	1.0,
	0.5,
	0.16666666666666666,
	0.041666666666666664,
	0.008333333333333333,
	0.001388888888888889,
	1.984126984126984e-04,
	2.48015873015873e-05,
	2.7557319223985893e-06,
	2.755731922398589e-07,
	2.505210838544172e-08,
}

// Saturation bounds for sigmoid and tanh. Past these the result rounds to
// the asymptote in the given precision.
const (
	sigmoidSat_f32 = 20.0
	sigmoidSat_f64 = 40.0
	tanhClamp_f32  = 9.0
	tanhClamp_f64  = 19.0
)

// Below tanhSmall, tanh is evaluated as x*P(x^2) from its odd Taylor
// series; 2*sigmoid(2x)-1 loses relative precision there.
const tanhSmall = 0.125

var tanhTaylor = [...]float64{
	1.0,
	-1.0 / 3,
	2.0 / 15,
	-17.0 / 315,
	62.0 / 2835,
	-1382.0 / 155925,
	21844.0 / 6081075,
}

// Coefficients of the rational fast_tanh approximation. Inputs are clamped
// to +/-fastTanhClamp, where the approximation meets 1 to within 5.1e-5.
const (
	fastTanhClamp = 5.7

	fastTanhN0 = 2027025.0
	fastTanhN1 = 270270.0
	fastTanhN2 = 6930.0
	fastTanhN3 = 36.0

	fastTanhD0 = 2027025.0
	fastTanhD1 = 945945.0
	fastTanhD2 = 51975.0
	fastTanhD3 = 630.0
)

// FastTanhMaxError bounds |FastTanh(x) - tanh(x)| over all finite x.
const FastTanhMaxError = 6e-5
