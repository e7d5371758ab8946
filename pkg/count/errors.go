package count

import (
	"errors"
)

var (
	ErrFileOpen     = errors.New("cannot open input file")
	ErrWrite        = errors.New("cannot write report")
	ErrPipelineDone = errors.New("pipeline already ran")
	ErrFormat       = errors.New("unknown report format")
)
