package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/willfong/rubank/internal/bank"
	"github.com/willfong/rubank/internal/ledger"
	"github.com/willfong/rubank/internal/ui"
)

// shell reads one command per line and answers on the UI until Q or end of
// input.
type shell struct {
	m          *bank.Manager
	u          *ui.UI
	activities func() (recordFile, error)
}

func newShell(m *bank.Manager, u *ui.UI, activities func() (recordFile, error)) *shell {
	return &shell{m: m, u: u, activities: activities}
}

// run processes commands from in. It returns nil on Q or end of input.
func (s *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if !s.exec(tokens) {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command and reports whether the shell should keep going.
func (s *shell) exec(tokens []string) bool {
	db := s.m.Database()

	switch tokens[0] {
	case "Q":
		s.u.Println("\nTransaction Manager is terminated.")
		return false
	case "P":
		s.u.Println("P command is deprecated!")
	case "O":
		s.open(tokens[1:])
	case "C":
		s.close(tokens[1:])
	case "D":
		if len(tokens) < 3 {
			s.reply("", bank.MissingTokens("the deposit"))
			break
		}
		s.reply(s.m.Deposit(tokens[1], tokens[2]))
	case "W":
		if len(tokens) < 3 {
			s.reply("", bank.MissingTokens("the withdrawal"))
			break
		}
		s.reply(s.m.Withdraw(tokens[1], tokens[2]))
	case "A":
		s.replay()
	case "PA":
		s.report(db.ReportArchive())
	case "PB":
		s.report(db.ReportByBranch())
	case "PH":
		s.report(db.ReportByHolder())
	case "PT":
		s.report(db.ReportByKind())
	case "PS":
		s.report(db.ReportStatements())
	default:
		s.u.Println("Invalid command!")
	}
	return true
}

func (s *shell) open(args []string) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	// the 7th token is the campus for College Checking and the term for a CD
	req := bank.OpenRequest{
		Kind:        arg(0),
		Branch:      arg(1),
		FirstName:   arg(2),
		LastName:    arg(3),
		DateOfBirth: arg(4),
		Amount:      arg(5),
		Campus:      arg(6),
		Term:        arg(6),
		OpenDate:    arg(7),
	}

	a, err := s.m.Open(req)
	if err != nil {
		s.reply("", err)
		return
	}
	s.reply(bank.OpenedMessage(a), nil)
}

func (s *shell) close(args []string) {
	switch len(args) {
	case 2:
		s.reply(s.m.Close(args[0], args[1]))
	case 4:
		s.reply(s.m.CloseAll(args[0], args[1], args[2], args[3]))
	default:
		s.u.Println("Missing data for closing an account.")
	}
}

func (s *shell) replay() {
	file, err := s.activities()
	if err != nil {
		s.u.Println(s.u.Error(err.Error()))
		return
	}

	s.u.Println(fmt.Sprintf("Processing %q...", file.name))
	lines, _ := s.m.ProcessActivities(bytes.NewReader(file.data))
	s.u.Println(lines...)
	s.u.Println(fmt.Sprintf("Account activities in %q processed.", file.name))
}

func (s *shell) report(text string) {
	switch text {
	case ledger.EmptyDatabaseMessage, ledger.EmptyArchiveMessage:
		s.u.Println(s.u.Muted(text))
	default:
		s.u.Println(text)
	}
}

// reply prints the answer to a command, colored by the kind of rejection
func (s *shell) reply(msg string, err error) {
	if err == nil {
		s.u.Println(s.u.Reply(msg, ui.ToneNormal))
		return
	}

	tone := ui.ToneWarning
	if bank.TypeOf(err) == bank.ErrorTypeNotFound {
		tone = ui.ToneError
	}
	s.u.Println(s.u.Reply(err.Error(), tone))
}
