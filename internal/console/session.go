// Package console implements the interactive menu loop of the ledger: it reads
// commands and values from a line-oriented input, dispatches them to the
// account service and renders the results.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/SscSPs/pocket_ledger/internal/validation"
	"github.com/shopspring/decimal"
)

const defaultBankName = "Banking Application"

// ErrSessionClosed is returned by Run once the input has been released.
var ErrSessionClosed = errors.New("console session closed")

// Session is a single interactive run over one input and one output stream.
// It is not safe for concurrent use.
type Session struct {
	reader      *bufio.Reader
	input       io.Reader
	out         io.Writer
	accounts    portssvc.AccountSvcFacade
	logger      *slog.Logger
	maxAttempts int
	bankName    string
	closed      bool
}

// Option configures a Session.
type Option func(*Session)

// WithMaxAttempts caps how many unparseable answers a prompt accepts before
// the current operation is abandoned. Zero or less means no cap.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

// WithLogger sets the base logger commands derive their scoped loggers from.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBankName sets the name shown in the banner and farewell.
func WithBankName(name string) Option {
	return func(s *Session) {
		if name = strings.TrimSpace(name); name != "" {
			s.bankName = name
		}
	}
}

// NewSession creates a session reading from in and writing to out. If in
// implements io.Closer it is closed exactly once when the session ends.
func NewSession(in io.Reader, out io.Writer, accounts portssvc.AccountSvcFacade, opts ...Option) *Session {
	s := &Session{
		reader:   bufio.NewReader(in),
		input:    in,
		out:      out,
		accounts: accounts,
		logger:   slog.Default(),
		bankName: defaultBankName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the menu loop until the user exits, the input ends or ctx is
// cancelled. End of input is a normal termination and returns nil.
func (s *Session) Run(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	defer s.release()

	s.logger.Info("Console session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.showMenu()
		choice, err := s.readInt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			s.logger.Info("Input ended, closing session")
			return nil
		}
		if errors.Is(err, apperrors.ErrTooManyAttempts) {
			s.println("Too many invalid attempts. Returning to main menu.")
			continue
		}
		if err != nil {
			return err
		}

		cmd, ok := s.command(choice)
		if !ok {
			s.println("Invalid choice. Please enter a number between 1 and 6.")
			continue
		}
		if cmd.exit {
			s.printf("Exiting... Thank you for using the %s.\n", s.bankName)
			s.logger.Info("Console session ended by user")
			return nil
		}

		var cmdErr error
		middleware.CommandLogging(ctx, s.logger, cmd.name, func(ctx context.Context) {
			cmdErr = cmd.run(ctx)
		})

		switch {
		case cmdErr == nil:
		case errors.Is(cmdErr, io.EOF):
			s.logger.Info("Input ended during command, closing session", slog.String("command", cmd.name))
			return nil
		case errors.Is(cmdErr, apperrors.ErrTooManyAttempts):
			s.println("Too many invalid attempts. Returning to main menu.")
		default:
			s.logger.Error("Command failed", slog.String("command", cmd.name), slog.String("error", cmdErr.Error()))
			s.printf("Error: %v\n", cmdErr)
		}
	}
}

type command struct {
	name string
	run  func(ctx context.Context) error
	exit bool
}

func (s *Session) command(choice int64) (command, bool) {
	switch choice {
	case 1:
		return command{name: "create_account", run: s.createAccount}, true
	case 2:
		return command{name: "deposit", run: s.deposit}, true
	case 3:
		return command{name: "withdraw", run: s.withdraw}, true
	case 4:
		return command{name: "view_account", run: s.viewAccount}, true
	case 5:
		return command{name: "update_contact", run: s.updateContact}, true
	case 6:
		return command{name: "exit", exit: true}, true
	default:
		return command{}, false
	}
}

func (s *Session) showMenu() {
	s.println("")
	s.printf("Welcome to the %s!\n", s.bankName)
	s.println("1. Create a new account")
	s.println("2. Deposit money")
	s.println("3. Withdraw money")
	s.println("4. View account details")
	s.println("5. Update contact details")
	s.println("6. Exit")
}

// release closes the input once; no read happens afterwards.
func (s *Session) release() {
	if s.closed {
		return
	}
	s.closed = true
	if c, ok := s.input.(io.Closer); ok {
		if err := c.Close(); err != nil {
			s.logger.Warn("Failed to close input", slog.String("error", err.Error()))
		}
	}
}

// readLine prompts and returns the next trimmed line, or io.EOF when input is
// exhausted. Lines have no length limit; a final line without a newline counts.
func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// readInt re-prompts until the answer parses as a base-10 32-bit integer.
func (s *Session) readInt(prompt string) (int64, error) {
	for attempt := 1; ; attempt++ {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 32)
		if err == nil {
			return n, nil
		}
		s.println("Please enter a valid integer.")
		if s.exhausted(attempt) {
			return 0, apperrors.ErrTooManyAttempts
		}
	}
}

// readAmount re-prompts until the answer parses as a decimal number within
// validation.AmountInRange and, when check is non-nil, check returns an empty
// rejection message.
func (s *Session) readAmount(prompt string, check func(decimal.Decimal) string) (decimal.Decimal, error) {
	for attempt := 1; ; attempt++ {
		line, err := s.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(line)
		switch {
		case err != nil || !validation.AmountInRange(amount):
			s.println("Please enter a valid numeric amount.")
		case check != nil && check(amount) != "":
			s.println(check(amount))
		default:
			return amount, nil
		}
		if s.exhausted(attempt) {
			return decimal.Zero, apperrors.ErrTooManyAttempts
		}
	}
}

func (s *Session) exhausted(attempt int) bool {
	return s.maxAttempts > 0 && attempt >= s.maxAttempts
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
