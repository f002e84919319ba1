package validation

// FormatNationalID groups the digits of an id as 784-YYYY-XXXXXXX-X while
// it is being typed. Digits past the fifteenth are dropped.
func FormatNationalID(value string) string {
	d := Digits(value)
	if len(d) > nationalIDDigits {
		d = d[:nationalIDDigits]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 7:
		return d[:3] + "-" + d[3:]
	case len(d) <= 14:
		return d[:3] + "-" + d[3:7] + "-" + d[7:]
	default:
		return d[:3] + "-" + d[3:7] + "-" + d[7:14] + "-" + d[14:]
	}
}

// FormatPhone groups phone digits as NN-NN-NNNN-NNNN, keeping any extra
// digits in the last group.
func FormatPhone(value string) string {
	d := Digits(value)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 5:
		return d[:2] + "-" + d[2:]
	case len(d) <= 9:
		return d[:2] + "-" + d[2:4] + "-" + d[4:]
	default:
		return d[:2] + "-" + d[2:4] + "-" + d[4:8] + "-" + d[8:]
	}
}
