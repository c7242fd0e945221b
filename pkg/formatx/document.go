package formatx

// digits strips every non-digit character.
func digits(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// CPF renders 000.000.000-00. Input without exactly 11 digits is returned
// unchanged.
func CPF(raw string) string {
	d := digits(raw)
	if len(d) != 11 {
		return raw
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// CNPJ renders 00.000.000/0000-00. Input without exactly 14 digits is
// returned unchanged.
func CNPJ(raw string) string {
	d := digits(raw)
	if len(d) != 14 {
		return raw
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// Phone renders (00) 00000-0000 for mobiles and (00) 0000-0000 for
// landlines. Other input is returned unchanged.
func Phone(raw string) string {
	d := digits(raw)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	default:
		return raw
	}
}

// CEP renders the postal code as 00000-000. Input without exactly 8 digits
// is returned unchanged.
func CEP(raw string) string {
	d := digits(raw)
	if len(d) != 8 {
		return raw
	}
	return d[0:5] + "-" + d[5:8]
}
