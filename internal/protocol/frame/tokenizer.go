package frame

// Tokenizer recovers marker-delimited frames from a byte stream delivered in
// arbitrary chunks. It is owned by a single reader and is not safe for
// concurrent use.
type Tokenizer struct {
	buf     []byte
	inFrame bool
}

// Feed scans chunk and returns every frame completed by it, markers included.
// Partial frames are carried over to the next call. Bytes outside a frame are
// dropped, and a start marker inside a frame discards the partial frame.
func (t *Tokenizer) Feed(chunk []byte) []string {
	var out []string
	for _, c := range chunk {
		switch {
		case c == StartMarker:
			t.buf = append(t.buf[:0], c)
			t.inFrame = true
		case c == EndMarker:
			if t.inFrame && len(t.buf) > 1 {
				t.buf = append(t.buf, c)
				out = append(out, string(t.buf))
			}
			t.buf = t.buf[:0]
			t.inFrame = false
		case t.inFrame:
			t.buf = append(t.buf, c)
		}
	}
	return out
}

// Pending returns the number of bytes buffered for an unterminated frame.
func (t *Tokenizer) Pending() int {
	return len(t.buf)
}

// Reset drops any partial frame.
func (t *Tokenizer) Reset() {
	t.buf = t.buf[:0]
	t.inFrame = false
}
