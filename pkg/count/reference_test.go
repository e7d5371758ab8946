package count

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"
)

// The straightforward way: regexp for words, a map for counts and a full
// comparison sort. Everything in the package is checked against it.

var wordRe = regexp.MustCompile(`[A-Za-z]+`)

type refToken struct {
	Word string
	Line int
}

func refTokens(text string) []refToken {
	var res []refToken
	for _, loc := range wordRe.FindAllStringIndex(text, -1) {
		res = append(res, refToken{
			Word: strings.ToLower(text[loc[0]:loc[1]]),
			Line: 1 + strings.Count(text[:loc[0]], "\n"),
		})
	}
	return res
}

func incFreq(m map[string]*WordInfo, tok refToken, limit int) {
	info, ok := m[tok.Word]
	if !ok {
		info = new(WordInfo)
		m[tok.Word] = info
	}
	info.Count++
	if info.Count <= limit {
		info.Lines = append(info.Lines, tok.Line)
	}
}

func getResult(infoByWord map[string]*WordInfo) []Entry {
	res := make([]Entry, 0, len(infoByWord))
	for word, info := range infoByWord {
		res = append(res, Entry{
			Word: word,
			Info: *info, // never nil.
		})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Info.Count > res[j].Info.Count {
			return true
		}
		if res[i].Info.Count < res[j].Info.Count {
			return false
		}
		return res[i].Word < res[j].Word
	})

	return res
}

func refRanked(text string, limit int) []Entry {
	infoByWord := make(map[string]*WordInfo)
	for _, tok := range refTokens(text) {
		incFreq(infoByWord, tok, limit)
	}
	return getResult(infoByWord)
}

// randomText mixes letters of both cases, a small vocabulary to get repeats,
// punctuation, newlines and non-ASCII bytes.
func randomText(r *rand.Rand, n int) string {
	vocab := []string{"the", "The", "cat", "CAT", "a", "an", "and", "zebra", "x", "Xy"}
	seps := []string{" ", " ", "\n", ".\n", ", ", "\t", "42", "\xc3\xa9", "--", "\r\n"}

	var sb strings.Builder
	for sb.Len() < n {
		if r.Intn(4) == 0 {
			for k := r.Intn(6) + 1; k > 0; k-- {
				sb.WriteByte(byte('a' + r.Intn(26)))
			}
		} else {
			sb.WriteString(vocab[r.Intn(len(vocab))])
		}
		sb.WriteString(seps[r.Intn(len(seps))])
	}
	return sb.String()
}
