package lineedit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Plain reads newline-terminated answers without completion. It is used
// when input is not a terminal.
type Plain struct {
	out     io.Writer
	lines   chan lineResult
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

type lineResult struct {
	text string
	err  error
}

// NewPlain starts reading lines from in in the background. Call Close to
// release the reader.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	p := &Plain{
		out:     out,
		lines:   make(chan lineResult),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *Plain) scan(in io.Reader) {
	defer close(p.stopped)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !p.send(lineResult{text: strings.TrimRight(scanner.Text(), "\r")}) {
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	if p.send(lineResult{err: err}) {
		close(p.lines)
	}
}

func (p *Plain) send(res lineResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.done:
		return false
	}
}

// ReadLine implements Reader. It returns io.EOF once input is exhausted or
// the reader is closed.
func (p *Plain) ReadLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// Close stops delivering lines. The background scan exits as soon as its
// pending read of the input returns.
func (p *Plain) Close() error {
	p.once.Do(func() { close(p.done) })
	return nil
}
