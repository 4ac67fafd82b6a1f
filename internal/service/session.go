package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tastybites/counter/internal/enum"
	"github.com/tastybites/counter/internal/menu"
	"github.com/tastybites/counter/internal/order"
	"github.com/tastybites/counter/internal/parser"
)

const selectionPrompt = "Enter item numbers to order (e.g. 1 2 3, or 0 to finish): "

// maxLineBytes caps a single line of operator input. Longer lines are
// drained and rejected as a whole.
const maxLineBytes = 64 * 1024

// Session runs the ordering loop for one operator: show the menu, read a
// selection line, ask a quantity for every valid item on it, and repeat
// until the terminator or end of input.
type Session struct {
	catalog *menu.Catalog
	ledger  *order.Ledger
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
	state   string
}

// NewSession creates a session in the AwaitingSelection state.
func NewSession(catalog *menu.Catalog, ledger *order.Ledger, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	return &Session{
		catalog: catalog,
		ledger:  ledger,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
		state:   enum.SessionAwaitingSelection,
	}
}

// State is the current state of the session.
func (s *Session) State() string {
	return s.state
}

// Run drives the session until it reaches Checkout. Operator mistakes and
// stock refusals are reported on the console and never end the session.
// Run returns an error only when ctx is cancelled between input lines.
func (s *Session) Run(ctx context.Context) error {
	for s.state != enum.SessionCheckout {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.ShowMenu()
		fmt.Fprint(s.out, selectionPrompt)

		line, err := s.readLine()
		if errors.Is(err, parser.ErrLineTooLong) {
			fmt.Fprintln(s.out, "Input line too long; ignored.")
			continue
		}
		if err != nil {
			s.checkout("end of input")
			break
		}

		sel := parser.ParseSelection(line)
		if sel.Checkout {
			s.checkout("terminator")
			break
		}
		s.handleChoices(sel.Choices)
	}
	return nil
}

// ShowMenu prints every item with its price and remaining stock.
func (s *Session) ShowMenu() {
	fmt.Fprintln(s.out, "\n------ MENU ------")
	for i, it := range s.catalog.List() {
		fmt.Fprintf(s.out, "%d. %-15s $%s (Available: %d)\n", i+1, it.Name, it.Price.StringFixed(2), it.Available)
	}
	fmt.Fprintln(s.out, "------------------")
}

func (s *Session) handleChoices(choices []parser.Choice) {
	for _, c := range choices {
		if c.Err != nil {
			fmt.Fprintf(s.out, "'%s' is not a valid number.\n", c.Raw)
			continue
		}

		item, err := s.catalog.Get(c.Number)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid item number: %s\n", c.Raw)
			continue
		}

		qty, err := s.askQuantity(item)
		if errors.Is(err, io.EOF) {
			s.checkout("end of input")
			return
		}
		if err != nil {
			fmt.Fprintln(s.out, "Invalid quantity.")
			fmt.Fprintln(s.out)
			continue
		}

		s.take(item, qty)
	}
}

func (s *Session) askQuantity(item *menu.Item) (int, error) {
	s.state = enum.SessionAwaitingQuantity
	defer func() {
		if s.state == enum.SessionAwaitingQuantity {
			s.state = enum.SessionAwaitingSelection
		}
	}()

	fmt.Fprintf(s.out, "Enter quantity for %s: ", item.Name)
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		qty, err := parser.ParseQuantity(line)
		if errors.Is(err, parser.ErrNoQuantityOnLine) {
			continue
		}
		return qty, err
	}
}

func (s *Session) take(item *menu.Item, qty int) {
	if err := s.catalog.ReduceStock(item, qty); err != nil {
		var se *menu.StockError
		if errors.As(err, &se) {
			s.logger.Info("stock refused",
				zap.String("item", se.Item),
				zap.Int("requested", se.Requested),
				zap.Int("available", se.Available))
			fmt.Fprintf(s.out, "Only %d available.\n\n", se.Available)
			return
		}
		s.logger.Error("reduce stock", zap.String("item", item.Name), zap.Error(err))
		fmt.Fprintln(s.out, "Invalid item.")
		return
	}

	s.ledger.AddLine(item, qty)
	s.logger.Info("line accepted",
		zap.String("order_id", s.ledger.ID().String()),
		zap.String("item", item.Name),
		zap.Int("quantity", qty),
		zap.Int("remaining", item.Available))
	fmt.Fprintf(s.out, "%s added!\n\n", item.Name)
}

func (s *Session) checkout(reason string) {
	s.state = enum.SessionCheckout
	s.logger.Debug("session checkout", zap.String("reason", reason), zap.Int("lines", s.ledger.LineCount()))
}

// readLine returns the next input line without its line ending. It returns
// parser.ErrLineTooLong for a line over maxLineBytes, after consuming it,
// and io.EOF once input is exhausted or unreadable.
func (s *Session) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := s.in.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(line) == 0 && !tooLong {
				return "", io.EOF
			}
		} else if err != nil {
			s.logger.Warn("read operator input", zap.Error(err))
			return "", io.EOF
		}
		break
	}

	if tooLong {
		s.logger.Info("input line too long", zap.Int("limit", maxLineBytes))
		return "", parser.ErrLineTooLong
	}
	return strings.TrimRight(string(line), "\r\n"), nil
}
