package protocol

// appendUint writes n in base 10 without using strconv or fmt.
// No sign, no padding, "0" for zero.
func appendUint(out OutputBuffer, n uint16) {
	if n == 0 {
		out.OutputByte('0')
		return
	}

	// uint16 is at most 5 digits
	var buf [5]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	out.Output(buf[pos:])
}
