// Package session keeps one loaded table in memory and answers questions
// about it, either one at a time through Ask or interactively through Run.
// Nothing is persisted. A Session is not safe for concurrent use.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
	"github.com/KaramelBytes/dataquery-cli/internal/query"
)

// Exchange is one question and the answer it received.
type Exchange struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Result   query.Result `json:"result"`
	AskedAt  time.Time    `json:"asked_at"`
}

// Session holds a table for its lifetime.
type Session struct {
	ID      string
	table   *dataset.Table
	interp  *query.Interpreter
	log     zerolog.Logger
	history []Exchange
	now     func() time.Time
}

// New starts a session over t. A nil interp uses a non-logging interpreter.
func New(t *dataset.Table, interp *query.Interpreter, log zerolog.Logger) *Session {
	if interp == nil {
		interp = query.New(zerolog.Nop())
	}
	s := &Session{
		ID:     uuid.NewString(),
		table:  t,
		interp: interp,
		now:    time.Now,
	}
	s.log = log.With().Str("session", s.ID).Logger()
	return s
}

// Table returns the table the session was started with.
func (s *Session) Table() *dataset.Table { return s.table }

// Ask interprets question and records the exchange.
func (s *Session) Ask(question string) Exchange {
	ex := Exchange{
		ID:       uuid.NewString(),
		Question: question,
		Result:   s.interp.Interpret(question, s.table),
		AskedAt:  s.now(),
	}
	s.history = append(s.history, ex)
	s.log.Debug().
		Str("exchange", ex.ID).
		Str("kind", string(ex.Result.Kind)).
		Int("history", len(s.history)).
		Msg("question answered")
	return ex
}

// History returns a copy of the exchanges so far, oldest first.
func (s *Session) History() []Exchange {
	out := make([]Exchange, len(s.history))
	copy(out, s.history)
	return out
}

// Run reads one question per line from in and writes each answer to out.
// It returns nil on EOF or an exit command, and ctx.Err() once ctx is done.
// On cancellation in is closed when it is an io.Closer so the reader
// goroutine can exit; otherwise it stays blocked until in returns.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		scanErr <- sc.Err()
	}()

	name := "no data"
	if s.table != nil {
		name = fmt.Sprintf("%s (%d rows, %d columns)", s.table.Name, s.table.RowCount(), len(s.table.Headers))
	}
	fmt.Fprintf(out, "Exploring %s\n", name)
	fmt.Fprintln(out, "Ask a question, 'history' to list previous ones, or 'exit' to quit.")
	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			if c, ok := in.(io.Closer); ok {
				_ = c.Close()
			}
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				if err := <-scanErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = strings.TrimSpace(line)
			switch strings.ToLower(line) {
			case "":
				continue
			case "exit", "quit", `\q`:
				return nil
			case "history":
				s.printHistory(out)
				continue
			}
			fmt.Fprintln(out, s.Ask(line).Result.Text())
		}
	}
}

func (s *Session) printHistory(out io.Writer) {
	if len(s.history) == 0 {
		fmt.Fprintln(out, "No questions yet.")
		return
	}
	for i, ex := range s.history {
		fmt.Fprintf(out, "%2d. %s → %s\n", i+1, ex.Question, ex.Result.Title)
	}
}
