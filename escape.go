package mandel

// DefaultIterLimit is the iteration cap used when no option overrides it.
// 255 maps escape counts directly onto an 8-bit intensity channel.
const DefaultIterLimit = 255

// EscapeTime reports how many iterations of z = z*z + c, starting from
// z = 0, are needed before the squared magnitude of z exceeds 4.
//
// The escape test runs before each step, so the returned count is the
// number of completed recurrence steps at the moment escape is detected:
// any c with |c| > 2 reports (1, true). If the limit is reached without
// escape the point is presumed to belong to the set and EscapeTime
// returns (0, false).
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}
