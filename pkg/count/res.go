package count

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteResult writes ranked as CSV rows of word, count and the comma-joined
// occurrence lines.
func WriteResult(w io.Writer, ranked []Entry) error {
	cw := csv.NewWriter(w)

	row := make([]string, 3)
	var lines []byte
	for _, e := range ranked {
		lines = lines[:0]
		for i, l := range e.Info.Lines {
			if i > 0 {
				lines = append(lines, ',')
			}
			lines = strconv.AppendInt(lines, int64(l), 10)
		}

		row[0] = e.Word
		row[1] = strconv.Itoa(e.Info.Count)
		row[2] = string(lines)

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadResult parses what WriteResult produced.
func ReadResult(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	var entries []Entry
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				return entries, nil
			}
			return nil, err
		}

		count, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("read line %d: wrong count: %w", i, err)
		}

		var lines []int
		if rec[2] != "" {
			for _, f := range strings.Split(rec[2], ",") {
				l, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("read line %d: wrong line number: %w", i, err)
				}
				lines = append(lines, l)
			}
		}

		entries = append(entries, Entry{
			Word: rec[0],
			Info: WordInfo{Count: count, Lines: lines},
		})
	}
}
