package session

import (
	"bufio"
	"context"
	"fmt"
	"github.com/langowen/converter/internal/converter/metrics"
	"github.com/langowen/converter/internal/entities"
	"github.com/pkg/errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const (
	menuTitle      = "=== Currency conversion ==="
	exitLabel      = "Exit"
	promptChoice   = "Choose a number: "
	promptAmount   = "Enter an amount: "
	msgExit        = "Exiting."
	msgBadChoice   = "⚠ Invalid choice."
	msgNotNumber   = "⚠ Please enter a number."
	msgNotPositive = "⚠ Please enter an amount greater than 0."
)

var (
	errNotNumber   = fmt.Errorf("%w: not a number", entities.ErrInvalidAmount)
	errNotPositive = fmt.Errorf("%w: must be greater than 0", entities.ErrInvalidAmount)
)

type Converter interface {
	Convert(amount entities.Amount, from, to entities.Currency, rates *entities.Rates) (entities.Amount, error)
}

type Formatter interface {
	Format(value entities.Amount, currency entities.Currency) string
}

type Recorder interface {
	Conversion(pair entities.Pair)
	Rejected(reason string)
}

type Options struct {
	Recorder Recorder
	Logger   *slog.Logger
}

type Option func(o *Options)

func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Session is the interactive menu loop. It reads one line per prompt and
// never changes the rates it was given.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	rates     *entities.Rates
	menu      *Menu
	converter Converter
	formatter Formatter
	recorder  Recorder
	logger    *slog.Logger

	state   State
	pending entities.Pair
	amount  entities.Amount
}

func New(in io.Reader, out io.Writer, rates *entities.Rates, menu *Menu, converter Converter, formatter Formatter, opts ...Option) (*Session, error) {
	const op = "session.New"

	if rates == nil {
		return nil, errors.Wrap(entities.ErrFetchRates, op+": rates are not loaded")
	}
	if menu == nil {
		return nil, fmt.Errorf("%s: menu is required", op)
	}
	if converter == nil {
		return nil, fmt.Errorf("%s: converter is required", op)
	}
	if formatter == nil {
		return nil, fmt.Errorf("%s: formatter is required", op)
	}

	options := Options{
		Recorder: nopRecorder{},
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		rates:     rates,
		menu:      menu,
		converter: converter,
		formatter: formatter,
		recorder:  options.Recorder,
		logger:    options.Logger.With("component", "session"),
		state:     AwaitingMenuChoice,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// Run drives the session until the exit choice, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	const op = "session.Run"

	for s.state != Exited {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, op)
		}

		if err := s.Step(); err != nil {
			return errors.Wrap(err, op)
		}
	}

	return nil
}

// Step performs the work of the current state and moves to the next one.
func (s *Session) Step() error {
	switch s.state {
	case AwaitingMenuChoice:
		return s.awaitMenuChoice()
	case AwaitingAmount:
		return s.awaitAmount()
	case Displaying:
		s.display()
		return nil
	default:
		return nil
	}
}

func (s *Session) awaitMenuChoice() error {
	s.printMenu()

	line, ok, err := s.readLine(promptChoice)
	if err != nil || !ok {
		s.exit()
		return err
	}

	choice := strings.TrimSpace(line)
	if choice == ExitChoice {
		s.exit()
		return nil
	}

	pair, ok := s.menu.Lookup(choice)
	if !ok {
		s.logger.Debug("rejected menu choice", "choice", choice, "error", entities.ErrInvalidChoice)
		s.recorder.Rejected(metrics.ReasonChoice)
		s.println(msgBadChoice)
		return nil
	}

	s.pending = pair
	s.state = AwaitingAmount

	return nil
}

func (s *Session) awaitAmount() error {
	line, ok, err := s.readLine(promptAmount)
	if err != nil || !ok {
		s.exit()
		return err
	}

	amount, err := parseAmount(line)
	if err != nil {
		s.logger.Debug("rejected amount", "input", line, "error", err)
		s.reject(err)
		s.pending = entities.Pair{}
		s.state = AwaitingMenuChoice
		return nil
	}

	s.amount = amount
	s.state = Displaying

	return nil
}

func (s *Session) display() {
	pair := s.pending
	s.pending = entities.Pair{}
	s.state = AwaitingMenuChoice

	result, err := s.converter.Convert(s.amount, pair.From, pair.To, s.rates)
	if err != nil {
		s.logger.Warn("conversion failed", "pair", pair.String(), "error", err)
		s.recorder.Rejected(metrics.ReasonConversion)
		s.println("⚠ " + userMessage(err))
		return
	}

	s.recorder.Conversion(pair)
	s.logger.Debug("converted", "pair", pair.String(), "amount", float64(s.amount), "result", float64(result))

	s.println(fmt.Sprintf("%s %s = %s %s",
		s.formatter.Format(s.amount, pair.From), pair.From,
		s.formatter.Format(result, pair.To), pair.To,
	))
}

func (s *Session) reject(err error) {
	switch {
	case errors.Is(err, errNotNumber):
		s.recorder.Rejected(metrics.ReasonNotNumber)
		s.println(msgNotNumber)
	default:
		s.recorder.Rejected(metrics.ReasonNotPositive)
		s.println(msgNotPositive)
	}
}

func (s *Session) exit() {
	s.println(msgExit)
	s.state = Exited
}

func (s *Session) printMenu() {
	var b strings.Builder

	b.WriteString("\n" + menuTitle + "\n")
	for _, entry := range s.menu.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", entry.Key, entry.Label)
	}
	fmt.Fprintf(&b, "%s: %s\n", ExitChoice, exitLabel)

	_, _ = io.WriteString(s.out, b.String())
}

// readLine reports ok=false on end of input. Lines have no length limit; a
// final line without a newline is still returned.
func (s *Session) readLine(prompt string) (string, bool, error) {
	_, _ = io.WriteString(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, errors.Wrap(err, "session.readLine")
	}
	if err != nil && line == "" {
		_, _ = io.WriteString(s.out, "\n")
		return "", false, nil
	}

	return strings.TrimRight(line, "\r\n"), true, nil
}

func (s *Session) println(line string) {
	_, _ = io.WriteString(s.out, line+"\n")
}

func parseAmount(line string) (entities.Amount, error) {
	const op = "session.parseAmount"

	text := strings.TrimSpace(line)
	if hasBasePrefix(text) {
		return 0, errors.Wrap(errNotNumber, op)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrap(fmt.Errorf("%w: %w", errNotNumber, err), op)
	}

	amount := entities.Amount(value)
	if !amount.Valid() {
		return 0, errors.Wrap(errNotPositive, op)
	}

	return amount, nil
}

// hasBasePrefix reports a 0x/0X prefix after an optional sign. ParseFloat
// reads those as hex floats; amounts are decimal only.
func hasBasePrefix(text string) bool {
	text = strings.TrimLeft(text, "+-")

	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrUnsupportedPair):
		return "This currency pair is not supported."
	case errors.Is(err, entities.ErrMissingRate):
		return "No exchange rate is available for this currency."
	case errors.Is(err, entities.ErrInvalidRate):
		return "The exchange rate for this currency is invalid."
	default:
		return "Conversion failed."
	}
}

type nopRecorder struct{}

func (nopRecorder) Conversion(entities.Pair) {}

func (nopRecorder) Rejected(string) {}
