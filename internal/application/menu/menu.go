package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wifictl/internal/application/usecases"
	"wifictl/internal/domain/entities"

	"github.com/sirupsen/logrus"
)

// interfaceLister is the slice of ListInterfacesUseCase the menu needs
type interfaceLister interface {
	Execute(ctx context.Context) (*usecases.ListInterfacesOutput, error)
}

// modeSetter is the slice of SetModeUseCase the menu needs
type modeSetter interface {
	Execute(ctx context.Context, input usecases.SetModeInput) (*usecases.SetModeOutput, error)
}

// Menu is the interactive read-eval loop. It re-collects the interface
// list on every iteration, renders it numbered from 1 with 0 reserved for
// quit, and dispatches mode transitions. Invalid input never terminates
// the loop; it re-renders a freshly collected list with an error message.
type Menu struct {
	lister  interfaceLister
	setter  modeSetter
	scanner *bufio.Scanner
	out     io.Writer
	logger  *logrus.Logger
}

// NewMenu creates a new Menu reading selections from in and rendering to out
func NewMenu(
	lister interfaceLister,
	setter modeSetter,
	in io.Reader,
	out io.Writer,
	logger *logrus.Logger,
) *Menu {
	return &Menu{
		lister:  lister,
		setter:  setter,
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run drives the menu until the user quits, input is exhausted, or the
// context is cancelled. Exhausted interfaces and normal quits are not
// errors; the process exits 0 for both.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		output, err := m.lister.Execute(ctx)
		if err != nil {
			fmt.Fprintf(m.out, "error: could not enumerate wireless interfaces: %v\n", err)
			return nil
		}

		ifaces := output.Interfaces
		if len(ifaces) == 0 {
			fmt.Fprintln(m.out, "no wireless interfaces found")
			return nil
		}

		m.renderList(ifaces)

		fmt.Fprint(m.out, "select interface (0 to quit): ")
		line, ok := m.readLine()
		if !ok {
			return nil
		}

		if line == "0" {
			return nil
		}

		index, err := strconv.Atoi(line)
		if err != nil || index < 1 || index > len(ifaces) {
			fmt.Fprintf(m.out, "invalid selection: %q\n\n", line)
			continue
		}

		selected := ifaces[index-1]

		done, err := m.handleAction(ctx, selected)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// renderList renders the numbered interface list plus the quit option
func (m *Menu) renderList(ifaces []entities.InterfaceName) {
	fmt.Fprintln(m.out, "wireless interfaces:")
	for i, name := range ifaces {
		fmt.Fprintf(m.out, "  %d) %s\n", i+1, name.String())
	}
	fmt.Fprintln(m.out, "  0) quit")
}

// handleAction prompts for and performs one action on the selected
// interface. It returns done=true when the session should end.
func (m *Menu) handleAction(ctx context.Context, name entities.InterfaceName) (bool, error) {
	fmt.Fprintf(m.out, "\n%s:\n", name.String())
	fmt.Fprintln(m.out, "  1) monitor")
	fmt.Fprintln(m.out, "  2) managed")
	fmt.Fprintln(m.out, "  3) back")
	fmt.Fprint(m.out, "action: ")

	line, ok := m.readLine()
	if !ok {
		return true, nil
	}

	var mode entities.Mode
	switch line {
	case "1", "monitor":
		mode = entities.ModeMonitor
	case "2", "managed":
		mode = entities.ModeManaged
	case "3", "back":
		fmt.Fprintln(m.out)
		return false, nil
	default:
		fmt.Fprintf(m.out, "invalid action: %q\n\n", line)
		return false, nil
	}

	output, err := m.setter.Execute(ctx, usecases.SetModeInput{Interface: name, Mode: mode})
	if err != nil {
		// The result classification already carries the failure; the menu
		// keeps looping regardless.
		m.logger.WithError(err).Debug("Mode transition returned an error")
	}

	fmt.Fprintf(m.out, "%s -> %s: %s\n", name.String(), mode.String(), output.Transition.Result.String())

	return m.promptContinue(), nil
}

// promptContinue asks whether to return to the interface list. A blank or
// affirmative answer continues; anything else ends the session.
func (m *Menu) promptContinue() bool {
	fmt.Fprint(m.out, "continue? [Y/n]: ")

	line, ok := m.readLine()
	if !ok {
		return true
	}

	switch strings.ToLower(line) {
	case "", "y", "yes":
		fmt.Fprintln(m.out)
		return false
	default:
		return true
	}
}

// readLine reads one trimmed line; ok is false when input is exhausted
func (m *Menu) readLine() (string, bool) {
	if !m.scanner.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}
