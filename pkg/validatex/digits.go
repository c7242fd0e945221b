package validatex

// Check-digit weights, applied left to right.
var (
	cpfWeights1  = [9]int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = [10]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// digitsOf returns the decimal digits of raw, ignoring everything else.
func digitsOf(raw string) []int {
	out := make([]int, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}
	return out
}

// DigitsOnly strips every non-digit character from raw.
func DigitsOnly(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// documentDigits strips raw and accepts it only when exactly n digits
// remain and they are not all the same.
func documentDigits(raw string, n int) ([]int, bool) {
	d := digitsOf(raw)
	if len(d) != n {
		return nil, false
	}
	for _, v := range d[1:] {
		if v != d[0] {
			return d, true
		}
	}
	return nil, false
}

func weightedSum(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	return sum
}

func cpfDigit(sum int) int {
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}

func cnpjDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
