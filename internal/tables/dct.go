package tables

// DCTStepSize[i] is the quantization step size for a coefficient encoded
// with i+1 bits, 1 <= i+1 <= 10.
//
// Bit-exact per original_source/src/coefs.rs's DCT_STEP_SIZE.
var DCTStepSize = [10]float32{
	1.2,
	0.85,
	0.65,
	0.40,
	0.28,
	0.15,
	0.08,
	0.04,
	0.02,
	0.01,
}

// DCTStdDev[k] is the standard deviation used for the (k+2)-th coefficient
// of a DCT block, 2 <= k+2 <= 10.
//
// Bit-exact per original_source/src/coefs.rs's DCT_STD_DEV.
var DCTStdDev = [9]float32{
	0.307,
	0.241,
	0.207,
	0.190,
	0.179,
	0.173,
	0.165,
	0.170,
	0.170,
}

// Gamma is gamma_w, the unvoiced-band scaling constant (spec Eq 121).
//
// Bit-exact per original_source/src/unvoiced.rs's SCALING_COEF.
const Gamma = 146.6432708443356
