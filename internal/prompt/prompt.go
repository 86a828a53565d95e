// Package prompt implements the interactive operator questions: plain yes/no
// confirmations and the per-conflict skip/rename choice with a bounded wait.
//
// Input is drained by a single goroutine feeding a line channel, so a
// question can be raced against a timeout without leaking a reader per
// question. On timeout or EOF every question resolves to its safe default
// (no / skip).
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Choice is the operator's answer to a conflict prompt.
type Choice int

const (
	ChoiceSkip   Choice = iota // Leave the candidate untouched.
	ChoiceRename               // Disambiguate with a numeric suffix.
)

// Prompter asks questions on out and reads answers from a line channel fed
// by the reader passed to New.
type Prompter struct {
	out     io.Writer
	lines   chan string
	timeout time.Duration
}

// New starts the input-draining goroutine and returns a ready Prompter.
// timeout bounds the wait on conflict prompts; zero or negative means wait
// forever.
func New(in io.Reader, out io.Writer, timeout time.Duration) *Prompter {
	p := &Prompter{
		out:     out,
		lines:   make(chan string),
		timeout: timeout,
	}
	go func() {
		defer close(p.lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			p.lines <- strings.TrimSpace(sc.Text())
		}
	}()
	return p
}

// YesNo asks a yes/no question and blocks until an answer arrives. EOF,
// context cancellation, and anything other than y/yes answer false.
func (p *Prompter) YesNo(ctx context.Context, question string) bool {
	fmt.Fprintf(p.out, "\n%s (y/n): ", question)
	select {
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		}
		return false
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return false
	}
}

// Conflict asks whether to skip the candidate or rename it with a numeric
// suffix. Invalid input re-asks with a fresh wait window; timeout, EOF, and
// cancellation all resolve to skip.
func (p *Prompter) Conflict(ctx context.Context, target string) Choice {
	for {
		fmt.Fprintf(p.out, "Target %q already exists. [s]kip or [r]ename with suffix? ", target)
		select {
		case line, ok := <-p.lines:
			if !ok {
				fmt.Fprintln(p.out)
				return ChoiceSkip
			}
			switch strings.ToLower(line) {
			case "r", "rename":
				return ChoiceRename
			case "s", "skip", "":
				return ChoiceSkip
			}
			fmt.Fprintln(p.out, "Please answer s or r.")
		case <-p.expired():
			fmt.Fprintf(p.out, "\nNo answer within %s, skipping.\n", p.timeout)
			return ChoiceSkip
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return ChoiceSkip
		}
	}
}

// expired returns a channel that fires after the configured timeout, or a
// nil channel (never fires) when no timeout is set.
func (p *Prompter) expired() <-chan time.Time {
	if p.timeout <= 0 {
		return nil
	}
	return time.After(p.timeout)
}
