package count

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agicy/wordstat/pkg/chunkio"
)

func tokenize(text string, bufSize int) []refToken {
	tok := NewTokenizer(chunkio.NewReader(strings.NewReader(text), bufSize))

	var res []refToken
	for {
		word, line, ok := tok.Next()
		if !ok {
			return res
		}
		res = append(res, refToken{Word: string(word), Line: line})
	}
}

func TestTokenizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []refToken
	}{
		{
			name: "sentences",
			text: "The cat sat on the mat.\nThe dog ran.\n",
			want: []refToken{
				{"the", 1}, {"cat", 1}, {"sat", 1}, {"on", 1}, {"the", 1}, {"mat", 1},
				{"the", 2}, {"dog", 2}, {"ran", 2},
			},
		},
		{
			name: "empty",
			text: "",
		},
		{
			name: "no letters",
			text: "123 ,.;\n\n\t!",
		},
		{
			name: "word at end of stream",
			text: "\n\nlast",
			want: []refToken{{"last", 3}},
		},
		{
			name: "newline terminator belongs to the next word",
			text: "one\ntwo\n\nthree",
			want: []refToken{{"one", 1}, {"two", 2}, {"three", 4}},
		},
		{
			name: "mixed case folds",
			text: "HeLLo WORLD",
			want: []refToken{{"hello", 1}, {"world", 1}},
		},
		{
			name: "digits and apostrophes split words",
			text: "don't abc123def",
			want: []refToken{{"don", 1}, {"t", 1}, {"abc", 1}, {"def", 1}},
		},
		{
			name: "non-ASCII bytes separate",
			text: "caf\xc3\xa9 na\xc3\xafve",
			want: []refToken{{"caf", 1}, {"na", 1}, {"ve", 1}},
		},
		{
			name: "crlf",
			text: "a\r\nb\r\n",
			want: []refToken{{"a", 1}, {"b", 2}},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, tokenize(test.text, 0))
		})
	}
}

func TestTokenizerWordSpansRefills(t *testing.T) {
	t.Parallel()

	// A one-byte buffer forces a refill in the middle of every word.
	got := tokenize("alpha beta\ngamma", 1)
	assert.Equal(t, []refToken{{"alpha", 1}, {"beta", 1}, {"gamma", 2}}, got)
}

func TestTokenizerMatchesReference(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		text := randomText(r, 2000)
		bufSize := r.Intn(64) + 1
		assert.Equal(t, refTokens(text), tokenize(text, bufSize), "case %d, buffer %d", i, bufSize)
	}
}

func TestTokenizerCounters(t *testing.T) {
	t.Parallel()

	tok := NewTokenizer(chunkio.NewReader(strings.NewReader("a b\nc\n\n"), 0))
	for {
		if _, _, ok := tok.Next(); !ok {
			break
		}
	}
	assert.Equal(t, 3, tok.Words())
	assert.Equal(t, 4, tok.Line())
}
