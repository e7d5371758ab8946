package count

// ByteSource is anything that hands out one byte at a time until exhausted.
// *chunkio.Reader is the one used in production.
type ByteSource interface {
	NextByte() (c byte, ok bool)
}

// Tokenizer splits a byte stream into lowercase ASCII words, each tagged with
// the 1-based line it starts on. It is single-use.
type Tokenizer struct {
	src   ByteSource
	word  []byte
	line  int
	words int
}

func NewTokenizer(src ByteSource) *Tokenizer {
	return &Tokenizer{
		src:  src,
		word: make([]byte, 0, 64),
		line: 1,
	}
}

// Next returns the next word and its line. ok is false when the stream is
// exhausted. The returned slice is overwritten by the following call.
func (t *Tokenizer) Next() (word []byte, line int, ok bool) {
	c, ok := t.src.NextByte()
	for ok && !isAlpha(c) {
		if c == '\n' {
			t.line++
		}
		c, ok = t.src.NextByte()
	}
	if !ok {
		return nil, t.line, false
	}

	line = t.line
	t.word = t.word[:0]
	for ok && isAlpha(c) {
		t.word = append(t.word, toLower(c))
		c, ok = t.src.NextByte()
	}
	// The terminator is consumed here, so account for it now.
	if ok && c == '\n' {
		t.line++
	}

	t.words++
	return t.word, line, true
}

// Line is the current value of the line counter.
func (t *Tokenizer) Line() int {
	return t.line
}

// Words reports how many words Next has produced.
func (t *Tokenizer) Words() int {
	return t.words
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
