package tables

// AmpsUsed returns J_1..J_6, the six DCT block sizes for the given harmonic
// count L (9 <= L <= 56), satisfying Sum(J_i) == L, J_1 <= ... <= J_6, and
// J_6 <= ceil(L/6).
//
// Bit-exact per original_source/src/coefs.rs's AMPS_USED table (there
// expressed as J_i - 1, the count of amplitude-derived coefficients beyond
// the block's leading gain term).
func AmpsUsed(l int) [6]int {
	return ampsUsed[l-9]
}

var ampsUsed = [48][6]int{
	{1, 1, 1, 2, 2, 2},    // L=9
	{1, 1, 2, 2, 2, 2},    // L=10
	{1, 2, 2, 2, 2, 2},    // L=11
	{2, 2, 2, 2, 2, 2},    // L=12
	{2, 2, 2, 2, 2, 3},    // L=13
	{2, 2, 2, 2, 3, 3},    // L=14
	{2, 2, 2, 3, 3, 3},    // L=15
	{2, 2, 3, 3, 3, 3},    // L=16
	{2, 3, 3, 3, 3, 3},    // L=17
	{3, 3, 3, 3, 3, 3},    // L=18
	{3, 3, 3, 3, 3, 4},    // L=19
	{3, 3, 3, 3, 4, 4},    // L=20
	{3, 3, 3, 4, 4, 4},    // L=21
	{3, 3, 4, 4, 4, 4},    // L=22
	{3, 4, 4, 4, 4, 4},    // L=23
	{4, 4, 4, 4, 4, 4},    // L=24
	{4, 4, 4, 4, 4, 5},    // L=25
	{4, 4, 4, 4, 5, 5},    // L=26
	{4, 4, 4, 5, 5, 5},    // L=27
	{4, 4, 5, 5, 5, 5},    // L=28
	{4, 5, 5, 5, 5, 5},    // L=29
	{5, 5, 5, 5, 5, 5},    // L=30
	{5, 5, 5, 5, 5, 6},    // L=31
	{5, 5, 5, 5, 6, 6},    // L=32
	{5, 5, 5, 6, 6, 6},    // L=33
	{5, 5, 6, 6, 6, 6},    // L=34
	{5, 6, 6, 6, 6, 6},    // L=35
	{6, 6, 6, 6, 6, 6},    // L=36
	{6, 6, 6, 6, 6, 7},    // L=37
	{6, 6, 6, 6, 7, 7},    // L=38
	{6, 6, 6, 7, 7, 7},    // L=39
	{6, 6, 7, 7, 7, 7},    // L=40
	{6, 7, 7, 7, 7, 7},    // L=41
	{7, 7, 7, 7, 7, 7},    // L=42
	{7, 7, 7, 7, 7, 8},    // L=43
	{7, 7, 7, 7, 8, 8},    // L=44
	{7, 7, 7, 8, 8, 8},    // L=45
	{7, 7, 8, 8, 8, 8},    // L=46
	{7, 8, 8, 8, 8, 8},    // L=47
	{8, 8, 8, 8, 8, 8},    // L=48
	{8, 8, 8, 8, 8, 9},    // L=49
	{8, 8, 8, 8, 9, 9},    // L=50
	{8, 8, 8, 9, 9, 9},    // L=51
	{8, 8, 9, 9, 9, 9},    // L=52
	{8, 9, 9, 9, 9, 9},    // L=53
	{9, 9, 9, 9, 9, 9},    // L=54
	{9, 9, 9, 9, 9, 10},   // L=55
	{9, 9, 9, 9, 10, 10},  // L=56
}
