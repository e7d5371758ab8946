// Package count builds a word frequency index of a text in a single pass and
// reports it ranked by descending frequency.
//
// Words are maximal runs of ASCII letters, folded to lowercase. For each word
// the index keeps its number of occurrences and the first few lines it was seen
// on.
package count

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/agicy/wordstat/internal/logger"
	"github.com/agicy/wordstat/pkg/chunkio"
)

// Format selects the report layout.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Phase is a stage of a Pipeline. Stages only ever move forward.
type Phase int

const (
	PhaseReading Phase = iota
	PhaseIndexing
	PhaseRanking
	PhaseEmitting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseReading:
		return "reading"
	case PhaseIndexing:
		return "indexing"
	case PhaseRanking:
		return "ranking"
	case PhaseEmitting:
		return "emitting"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

type Options struct {
	InputBufferSize  int
	OutputBufferSize int
	LineLimit        int
	Buckets          int
	Format           Format
	Logger           *log.Logger
}

func (o Options) withDefaults() Options {
	if o.InputBufferSize <= 0 {
		o.InputBufferSize = chunkio.DefaultBufferSize
	}
	if o.OutputBufferSize <= 0 {
		o.OutputBufferSize = chunkio.DefaultBufferSize
	}
	if o.LineLimit <= 0 {
		o.LineLimit = DefaultLineLimit
	}
	if o.Buckets <= 0 {
		o.Buckets = DefaultBuckets
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	return o
}

// Stats describes a finished run.
type Stats struct {
	BytesRead int64
	Refills   int
	Flushes   int
	Words     int
	Lines     int
	Distinct  int
	Nodes     int
	Residual  int
	Durations map[Phase]time.Duration
	// ReadErr is the read failure that cut the input short, if any. The report
	// still covers everything read before it.
	ReadErr error
}

// Pipeline runs Reading -> Indexing -> Ranking -> Emitting -> Done exactly once.
type Pipeline struct {
	opts  Options
	log   *log.Logger
	phase Phase
	ran   bool
	mark  time.Time
	stats Stats
}

func NewPipeline(opts Options) *Pipeline {
	opts = opts.withDefaults()
	return &Pipeline{
		opts: opts,
		log:  opts.Logger,
		stats: Stats{
			Durations: make(map[Phase]time.Duration, int(PhaseDone)),
		},
	}
}

// Phase reports the stage the pipeline is in.
func (p *Pipeline) Phase() Phase {
	return p.phase
}

func (p *Pipeline) advance(next Phase) {
	if next != p.phase+1 {
		panic(fmt.Sprintf("count: illegal transition %s -> %s", p.phase, next))
	}
	now := time.Now()
	p.stats.Durations[p.phase] += now.Sub(p.mark)
	p.log.Debug("phase finished", "phase", p.phase, "took", now.Sub(p.mark))
	p.phase = next
	p.mark = now
}

// Run indexes r and writes the ranked report to w.
//
// Output already handed to the sink is flushed to w on every return path.
func (p *Pipeline) Run(r io.Reader, w io.Writer) (Stats, error) {
	if p.ran {
		return p.stats, ErrPipelineDone
	}
	p.ran = true
	p.mark = time.Now()

	trie := p.index(r)

	p.advance(PhaseRanking)
	ranked, residual := Rank(trie.Entries(), p.opts.Buckets)
	p.stats.Residual = residual
	p.log.Debug("ranked", "entries", len(ranked), "residual", residual)

	p.advance(PhaseEmitting)
	if err := p.emit(w, ranked); err != nil {
		return p.stats, err
	}

	p.advance(PhaseDone)
	return p.stats, nil
}

func (p *Pipeline) index(r io.Reader) *Trie {
	src := chunkio.NewReader(r, p.opts.InputBufferSize)
	tok := NewTokenizer(src)
	trie := NewTrie(WithLineLimit(p.opts.LineLimit))

	for {
		word, line, ok := tok.Next()
		if !ok {
			break
		}
		if p.phase == PhaseReading {
			p.advance(PhaseIndexing)
		}
		trie.Insert(word, line)
	}
	if p.phase == PhaseReading {
		// Nothing to index, but the stage still happened.
		p.advance(PhaseIndexing)
	}

	if err := src.Err(); err != nil {
		p.stats.ReadErr = err
		p.log.Warn("read failed, treating it as end of input", "err", err, "bytes", src.BytesRead())
	}

	p.stats.BytesRead = src.BytesRead()
	p.stats.Refills = src.Refills()
	p.stats.Words = tok.Words()
	p.stats.Lines = tok.Line()
	p.stats.Distinct = trie.Len()
	p.stats.Nodes = trie.Nodes()
	p.log.Debug("indexed",
		"bytes", p.stats.BytesRead,
		"refills", p.stats.Refills,
		"words", p.stats.Words,
		"distinct", p.stats.Distinct,
		"nodes", p.stats.Nodes,
	)
	return trie
}

func (p *Pipeline) emit(w io.Writer, ranked []Entry) (err error) {
	sink := chunkio.NewWriter(w, p.opts.OutputBufferSize)
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
		p.stats.Flushes = sink.Flushes()
	}()

	switch p.opts.Format {
	case FormatCSV:
		err = WriteResult(sink, ranked)
	case FormatText:
		err = WriteReport(sink, ranked)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, p.opts.Format)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// File runs a fresh pipeline over the file at path.
func File(path string, w io.Writer, opts Options) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer f.Close()

	return NewPipeline(opts).Run(f, w)
}
