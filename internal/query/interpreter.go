package query

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

// Interpreter answers free-text questions about a Table. It holds no
// per-question state and may be reused.
type Interpreter struct {
	log zerolog.Logger
}

// New returns an Interpreter that logs matching decisions to log.
func New(log zerolog.Logger) *Interpreter {
	return &Interpreter{log: log}
}

var defaultInterpreter = New(zerolog.Nop())

// Interpret answers question with an Interpreter that does not log.
func Interpret(question string, t *dataset.Table) Result {
	return defaultInterpreter.Interpret(question, t)
}

// Interpret matches question against the intent table and runs the handler
// of the first matching pattern. It always returns a Result.
func (in *Interpreter) Interpret(question string, t *dataset.Table) Result {
	if t == nil {
		return Result{
			Kind:     KindError,
			Title:    "No Data Available",
			Response: "Please load a CSV file first to analyze your data and ask questions about it.",
			Suggestions: []string{
				"Load a CSV file",
				"Profile the file's columns",
				"View sample data formats",
			},
		}
	}
	q := strings.ToLower(strings.TrimSpace(question))
	m, ok := MatchIntent(q)
	if !ok {
		in.log.Debug().Str("question", q).Msg("no intent matched")
		return Result{
			Kind:        KindInsight,
			Title:       "I'm here to help!",
			Response:    "I didn't quite understand your question about the data. Here are some examples of what you can ask me:",
			Suggestions: Suggestions(t),
		}
	}
	in.log.Debug().
		Str("question", q).
		Str("intent", string(m.Intent)).
		Str("pattern", m.Pattern).
		Strs("captures", m.Captures).
		Msg("intent matched")
	res := handlers[m.Intent](m, t)
	res.Intent = m.Intent
	if res.Kind == KindError {
		in.log.Debug().Str("intent", string(m.Intent)).Str("title", res.Title).Msg("question could not be answered")
	}
	return res
}
