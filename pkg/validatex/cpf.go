package validatex

// IsCPF reports whether raw is a valid CPF. Formatting characters are
// ignored; exactly 11 digits must remain.
func IsCPF(raw string) bool {
	d, ok := documentDigits(raw, 11)
	if !ok {
		return false
	}
	if cpfDigit(weightedSum(d, cpfWeights1[:])) != d[9] {
		return false
	}
	return cpfDigit(weightedSum(d, cpfWeights2[:])) == d[10]
}

// CPFCheckDigits computes the two check digits for the first nine digits
// of base. ok is false when base has fewer than nine digits.
func CPFCheckDigits(base string) (first, second int, ok bool) {
	d := digitsOf(base)
	if len(d) < 9 {
		return 0, 0, false
	}
	d = append(d[:9:9], 0)
	first = cpfDigit(weightedSum(d, cpfWeights1[:]))
	d[9] = first
	second = cpfDigit(weightedSum(d, cpfWeights2[:]))
	return first, second, true
}
