package pegrt

// NewLiteralFold returns the literal for the bytes of s matched ignoring
// ASCII case, as in "select"i. Bytes outside A-Z and a-z match exactly.
func NewLiteralFold(s string) *Literal {
	data := []byte(s)
	for i := range data {
		data[i] = lowerASCII(data[i])
	}
	return &Literal{data: data, fold: true}
}

// Reports whether text equals lowered, itself already in lower case,
// ignoring ASCII case. Both have the same length.
func equalFoldASCII(text, lowered []byte) bool {
	for i, ch := range text {
		if lowerASCII(ch) != lowered[i] {
			return false
		}
	}
	return true
}

func lowerASCII(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
