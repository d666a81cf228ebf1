package producer

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lth/gibberish/internal/gibberish"
)

var ErrInvalidCount = errors.New("producer: count must be positive")

type Result struct {
	Buffers  uint64
	Bytes    uint64
	Duration time.Duration
}

type Progress struct {
	Buffers     uint64
	Bytes       uint64
	Rate        float64 // bytes per second
	ElapsedTime time.Duration
}

// Sink receives generated buffers in the order their random bytes were read.
type Sink func(*gibberish.Result) error

type Producer struct {
	cfg        gibberish.Config
	src        io.Reader
	workers    int
	buffers    uint64
	bytes      uint64
	startTime  time.Time
	progressCb func(Progress)
}

func New(cfg gibberish.Config, src io.Reader, workers int) *Producer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Producer{
		cfg:     cfg,
		src:     src,
		workers: workers,
	}
}

func (p *Producer) SetProgressCallback(cb func(Progress)) {
	p.progressCb = cb
}

func (p *Producer) Workers() int {
	return p.workers
}

func (p *Producer) reportProgress() {
	if p.progressCb == nil {
		return
	}

	buffers := atomic.LoadUint64(&p.buffers)
	bytes := atomic.LoadUint64(&p.bytes)
	elapsed := time.Since(p.startTime)

	p.progressCb(Progress{
		Buffers:     buffers,
		Bytes:       bytes,
		Rate:        float64(bytes) / elapsed.Seconds(),
		ElapsedTime: elapsed,
	})
}

type job struct {
	seq int
	buf []byte
}

type done struct {
	seq int
	res *gibberish.Result
}

// Run generates count buffers, or keeps going until ctx ends when count <= 0,
// and hands each one to sink. Random bytes are read from the source by a
// single goroutine, so a seeded source yields the same buffers, in the same
// order, as sequential gibberish.Generate calls. The first source or sink
// error stops the run.
func (p *Producer) Run(ctx context.Context, count int, sink Sink) (Result, error) {
	p.startTime = time.Now()
	atomic.StoreUint64(&p.buffers, 0)
	atomic.StoreUint64(&p.bytes, 0)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 1)
	fail := func(err error) {
		select {
		case errChan <- err:
		default:
		}
		cancel()
	}

	jobs := make(chan job, p.workers)
	results := make(chan done, p.workers)

	go func() {
		defer close(jobs)
		for seq := 0; count <= 0 || seq < count; seq++ {
			buf := make([]byte, p.cfg.Size)
			if err := gibberish.Fill(p.src, buf); err != nil {
				fail(err)
				return
			}
			select {
			case <-runCtx.Done():
				return
			case jobs <- job{seq: seq, buf: buf}:
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := gibberish.FromRandom(p.cfg, j.buf)
				select {
				case <-runCtx.Done():
					return
				case results <- done{seq: j.seq, res: res}:
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	pending := make(map[int]*gibberish.Result)
	next := 0
	for d := range results {
		if runCtx.Err() != nil {
			continue
		}
		pending[d.seq] = d.res
		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if err := sink(res); err != nil {
				fail(err)
				break
			}
			atomic.AddUint64(&p.buffers, 1)
			atomic.AddUint64(&p.bytes, uint64(len(res.Buffer)))
			p.reportProgress()
		}
	}

	result := Result{
		Buffers:  atomic.LoadUint64(&p.buffers),
		Bytes:    atomic.LoadUint64(&p.bytes),
		Duration: time.Since(p.startTime),
	}

	select {
	case err := <-errChan:
		return result, err
	default:
	}
	if err := ctx.Err(); err != nil && (count <= 0 || result.Buffers < uint64(count)) {
		return result, err
	}
	return result, nil
}

// Generate is Run collecting the results in memory.
func (p *Producer) Generate(ctx context.Context, count int) ([]*gibberish.Result, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	out := make([]*gibberish.Result, 0, count)
	_, err := p.Run(ctx, count, func(r *gibberish.Result) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
