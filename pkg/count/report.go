package count

import (
	"strconv"

	"github.com/agicy/wordstat/pkg/chunkio"
)

const (
	reportHeader = "WORD                 COUNT APPEARS-LINES\n"
	wordWidth    = 20
	countWidth   = 5
)

// WriteReport writes the fixed-width frequency table for ranked into w. It
// does not flush w.
func WriteReport(w *chunkio.Writer, ranked []Entry) error {
	w.PutString(reportHeader)

	line := make([]byte, 0, 256)
	for _, e := range ranked {
		line = appendReportLine(line[:0], e)
		w.PutBytes(line)
		if err := w.Err(); err != nil {
			return err
		}
	}
	return w.Err()
}

func appendReportLine(dst []byte, e Entry) []byte {
	dst = appendPadded(dst, e.Word, wordWidth)
	dst = append(dst, ' ')

	start := len(dst)
	dst = strconv.AppendInt(dst, int64(e.Info.Count), 10)
	dst = pad(dst, countWidth-(len(dst)-start))
	dst = append(dst, ' ')

	for i, l := range e.Info.Lines {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(l), 10)
	}
	return append(dst, '\n')
}

// appendPadded left-justifies s in a field of width columns. Longer values are
// written in full.
func appendPadded(dst []byte, s string, width int) []byte {
	dst = append(dst, s...)
	return pad(dst, width-len(s))
}

func pad(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, ' ')
	}
	return dst
}
