package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/application/command"
	"github.com/tutorscontactpro/contacts/internal/application/parser"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// Prompt is printed before every line of input.
const Prompt = "> "

// Executor runs user input. logic.Manager satisfies it.
type Executor interface {
	Execute(ctx context.Context, input string) (*command.Result, error)
	FilteredPersons() []*person.Person
}

// REPL reads commands line by line until exit, end of input or cancellation.
type REPL struct {
	exec      Executor
	in        io.Reader
	out       io.Writer
	presenter *ListPresenter
	log       *logger.Logger
}

// NewREPL creates a REPL reading from in and writing to out.
func NewREPL(exec Executor, in io.Reader, out io.Writer, log *logger.Logger) *REPL {
	if log == nil {
		log = logger.Nop()
	}
	return &REPL{
		exec:      exec,
		in:        in,
		out:       out,
		presenter: NewListPresenter(),
		log:       log.With(logger.Component("cli")),
	}
}

// Run shows the initial list, then serves commands.
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	r.print(r.presenter.Render(r.exec.FilteredPersons()))
	r.print(Prompt)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("cli: read input: %w", err)
					}
				default:
				}
				return nil
			}
			if exit := r.Handle(ctx, line); exit {
				return nil
			}
			r.print(Prompt)
		}
	}
}

// Handle runs one line and writes its outcome. It reports whether the
// session should end.
func (r *REPL) Handle(ctx context.Context, line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	res, err := r.exec.Execute(ctx, line)
	if err != nil {
		r.print(shared.Message(err) + "\n")
		return false
	}

	r.print(res.Feedback + "\n")
	switch {
	case res.Exit:
		return true
	case res.ShowHelp:
		r.print(parser.HelpText + "\n")
	case res.ShowMail:
		r.print("Mailto link: " + res.MailtoLink + "\n")
	default:
		r.print(r.presenter.Render(r.exec.FilteredPersons()))
	}
	return false
}

func (r *REPL) print(s string) {
	if _, err := io.WriteString(r.out, s); err != nil {
		r.log.Warn("write to terminal failed", logger.Err(err))
	}
}
