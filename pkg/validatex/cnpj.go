package validatex

// IsCNPJ reports whether raw is a valid CNPJ. Formatting characters are
// ignored; exactly 14 digits must remain.
func IsCNPJ(raw string) bool {
	d, ok := documentDigits(raw, 14)
	if !ok {
		return false
	}
	if cnpjDigit(weightedSum(d, cnpjWeights1[:])) != d[12] {
		return false
	}
	return cnpjDigit(weightedSum(d, cnpjWeights2[:])) == d[13]
}

// CNPJCheckDigits computes the two check digits for the first twelve
// digits of base. ok is false when base has fewer than twelve digits.
func CNPJCheckDigits(base string) (first, second int, ok bool) {
	d := digitsOf(base)
	if len(d) < 12 {
		return 0, 0, false
	}
	d = append(d[:12:12], 0)
	first = cnpjDigit(weightedSum(d, cnpjWeights1[:]))
	d[12] = first
	second = cnpjDigit(weightedSum(d, cnpjWeights2[:]))
	return first, second, true
}
