// Package input collects the conversion source and output path from the
// user when they are not given as arguments.
// Implements: prd004-interface (R2);
//
//	docs/ARCHITECTURE § Interface.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/meshintel/mdforge/pkg/types"
)

// DefaultPasteTimeout is how long to wait for another pasted line before
// the input is considered complete.
const DefaultPasteTimeout = 2 * time.Second

// maxLineSize bounds a single pasted line.
const maxLineSize = 4 * 1024 * 1024

// Prompter reads interactive input line by line. A single goroutine owns
// the underlying reader; after a paste times out, that goroutine stays
// parked on the next read, so one Prompter must serve the whole run and
// the reader cannot be reused afterwards.
type Prompter struct {
	out          io.Writer
	lines        chan string
	scanErr      error // set by the reader goroutine before lines is closed
	pasteTimeout time.Duration
}

// New starts a Prompter reading from r and prompting on w. A zero or
// negative pasteTimeout selects DefaultPasteTimeout.
func New(r io.Reader, w io.Writer, pasteTimeout time.Duration) *Prompter {
	if pasteTimeout <= 0 {
		pasteTimeout = DefaultPasteTimeout
	}
	p := &Prompter{
		out:          w,
		lines:        make(chan string),
		pasteTimeout: pasteTimeout,
	}
	go p.read(r)
	return p
}

func (p *Prompter) read(r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		p.lines <- sc.Text()
	}
	p.scanErr = sc.Err()
	close(p.lines)
}

// inputEnded distinguishes a clean EOF from a read failure after the line
// channel closes.
func (p *Prompter) inputEnded() error {
	if p.scanErr != nil {
		return fmt.Errorf("reading input: %w", p.scanErr)
	}
	return nil
}

// ReadSource collects the conversion source. A first line naming an
// existing regular file reads that file (R2.1); anything else, an empty
// line included, starts paste mode, which collects lines until the paste
// timeout elapses or input ends (R2.2, R2.3).
func (p *Prompter) ReadSource() (types.Source, error) {
	fmt.Fprintln(p.out, "Enter a file path, or paste the content directly.")
	fmt.Fprintf(p.out, "(Pasted input is finalized after %s without a new line.)\n", p.pasteTimeout)
	fmt.Fprint(p.out, "File path or first line of content: ")

	first, ok := <-p.lines
	if !ok {
		if err := p.inputEnded(); err != nil {
			return types.Source{}, err
		}
		return types.Source{}, fmt.Errorf("no input")
	}
	first = strings.TrimSpace(first)

	var pasted []string
	if first == "" {
		fmt.Fprintln(p.out, "empty line; switching to paste mode")
	} else {
		switch info, err := os.Stat(first); {
		case err == nil && info.Mode().IsRegular():
			fmt.Fprintf(p.out, "reading from file: %s\n", first)
			content, err := os.ReadFile(first)
			if err != nil {
				return types.Source{}, fmt.Errorf("reading %s: %w", first, err)
			}
			return types.Source{Path: first, Content: content}, nil
		case err == nil:
			fmt.Fprintf(p.out, "%s is not a regular file; treating input as pasted content\n", first)
		default:
			fmt.Fprintln(p.out, "not an existing file; treating input as pasted content")
		}
		pasted = append(pasted, first)
	}

	// Collect lines until the pause that marks the end of the paste.
	for {
		select {
		case line, ok := <-p.lines:
			if !ok {
				if err := p.inputEnded(); err != nil {
					return types.Source{}, err
				}
				return finishPaste(p.out, pasted, "input ended")
			}
			pasted = append(pasted, line)
		case <-time.After(p.pasteTimeout):
			return finishPaste(p.out, pasted, "input finalized")
		}
	}
}

func finishPaste(w io.Writer, lines []string, reason string) (types.Source, error) {
	fmt.Fprintf(w, "--- %s ---\n", reason)
	content := strings.Join(lines, "\n")
	if strings.TrimSpace(content) == "" {
		return types.Source{}, fmt.Errorf("no content provided")
	}
	return types.Source{Content: []byte(content)}, nil
}

// ReadOutputPath prompts until a non-empty output path is entered.
func (p *Prompter) ReadOutputPath() (string, error) {
	for {
		fmt.Fprint(p.out, "Output path for the converted markdown (e.g. output/my_doc.md): ")
		line, ok := <-p.lines
		if !ok {
			if err := p.inputEnded(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("no output path given")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "the output path cannot be empty")
	}
}
