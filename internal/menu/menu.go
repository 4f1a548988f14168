// Package menu is the interactive text front end of the solver.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"crosswarped.com/wordle"
)

const clearScreen = "\033[H\033[2J"

type screen int

const (
	screenMain screen = iota
	screenGreens
	screenYellows
	screenBlacks
)

var screenTitles = map[screen]string{
	screenMain:    "Wordle Solver",
	screenGreens:  "Change greens",
	screenYellows: "Add yellow sequence",
	screenBlacks:  "Add black letters",
}

var screenErrors = map[screen]string{
	screenMain:    "ERROR: Enter a viable command.",
	screenGreens:  "ERROR: Must enter 5 characters with letters and '.'",
	screenYellows: "ERROR: Must enter 5 characters with letters and '.' (Note: Cannot have more than 5 yellow sequences)",
	screenBlacks:  "ERROR: Must enter letters only. (Note: Cannot have more than 25 black letters)",
}

var screenPrompts = map[screen][]string{
	screenMain:    {"Navigate [ -r, 1, 2, 3, 4, 5, -n, -h, -x ]"},
	screenGreens:  {"Enter new greens [ ex: s..r. ]", "'-b' to go back."},
	screenYellows: {"Add yellow sequence [ ex: d..s. ]", "'-b' to go back."},
	screenBlacks: {
		"Add black letters [ ex: 'gtu' or 'g' or 'gt' ]",
		"WARNING: letters found in green letters or a yellow sequence will not be added.",
		"'-b' to go back.",
	},
}

type Params struct {
	In  io.Reader
	Out io.Writer

	// NewSolver starts a fresh session; it is called once up front and again on "-n".
	NewSolver func() *wordle.Solver

	// Top is the number of suggestions shown. Defaults to 10.
	Top int

	// ClearScreen redraws from the top of the terminal instead of scrolling.
	ClearScreen bool

	Logger *zap.Logger
}

// Menu reads commands line by line and redraws the current screen after each.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	newSolver func() *wordle.Solver
	top       int
	clear     bool
	logger    *zap.Logger
	styles    styles

	solver   *wordle.Solver
	screen   screen
	failed   bool
	showHelp bool
}

func New(p Params) *Menu {
	top := p.Top
	if top <= 0 {
		top = 10
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		in:        bufio.NewScanner(p.In),
		out:       p.Out,
		newSolver: p.NewSolver,
		top:       top,
		clear:     p.ClearScreen,
		logger:    logger,
		styles:    newStyles(lipgloss.NewRenderer(p.Out)),
		solver:    p.NewSolver(),
	}
}

// Run redraws and dispatches until "-x", end of input, or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.clear {
			fmt.Fprint(m.out, clearScreen)
		}
		fmt.Fprintln(m.out, m.Render())
		fmt.Fprint(m.out, ">>> ")

		if !m.in.Scan() {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		if m.Dispatch(m.in.Text()) {
			if m.clear {
				fmt.Fprint(m.out, clearScreen)
			}
			return nil
		}
	}
}

// Dispatch applies one line of input and reports whether the user quit.
func (m *Menu) Dispatch(line string) bool {
	input := strings.ToLower(strings.TrimSpace(line))
	m.failed = false
	m.showHelp = false

	switch input {
	case "-x":
		return true
	case "-r":
		m.solver.Solve()
	case "-n":
		m.solver = m.newSolver()
		m.screen = screenMain
		m.logger.Debug("new solver")
	case "-b":
		m.screen = screenMain
	case "-h":
		m.showHelp = true
	case "1":
		m.screen = screenGreens
	case "2":
		m.screen = screenYellows
	case "3":
		m.screen = screenBlacks
	case "4":
		m.solver.ResetYellows()
		m.solver.Solve()
	case "5":
		m.solver.ResetBlacks()
		m.solver.Solve()
	default:
		m.apply(input)
	}
	return false
}

func (m *Menu) apply(input string) {
	var err error
	switch m.screen {
	case screenGreens:
		err = m.solver.SetGreens(input)
	case screenYellows:
		err = m.solver.AddYellow(input)
	case screenBlacks:
		err = m.solver.AddBlacks(input)
	default:
		m.failed = true
		return
	}
	if err != nil {
		m.logger.Debug("input rejected", zap.Error(err))
		m.failed = true
		return
	}
	m.solver.Solve()
}

// Render draws the current screen.
func (m *Menu) Render() string {
	s := m.styles
	c := m.solver.Constraints

	title := s.Title.Render(screenTitles[m.screen])

	option := func(key, label, current string) string {
		line := fmt.Sprintf("%-6s %-26s", s.Key.Render("["+key+"]"), label)
		if current != "" {
			line += " " + current
		}
		return line
	}
	greens := fmt.Sprintf("[%d] %s", c.KnownGreens(), s.Green.Render(c.Greens()))
	yellows := fmt.Sprintf("[%d] %s", len(c.Yellows()), s.Yellow.Render(c.YellowsDisplay()))
	blacks := fmt.Sprintf("[%d] %s", len(c.Blacks()), s.Black.Render(c.Blacks()))

	back := option("-b", "Back", "")
	lines := []string{option("-r", "Run solver", ""), ""}
	lines = append(lines, pick(m.screen == screenGreens, back, option("1", "Change green letters", "Current "+greens)))
	lines = append(lines, pick(m.screen == screenYellows, back, option("2", "Add yellow sequence", "Current "+yellows)))
	lines = append(lines, pick(m.screen == screenBlacks, back, option("3", "Add black letters", "Current "+blacks)))
	lines = append(lines,
		"",
		option("4", "Reset yellow sequences", ""),
		option("5", "Reset black letters", ""),
	)
	if m.screen == screenMain {
		lines = append(lines, "", option("-n", "New solver", ""), option("-x", "Quit", ""))
	}

	switch m.screen {
	case screenGreens:
		lines = append(lines, "", "Current greens "+greens)
	case screenYellows:
		lines = append(lines, "", "Current yellows "+yellows)
	case screenBlacks:
		lines = append(lines, "", "Current black letters "+blacks)
	}

	lines = append(lines, "", fmt.Sprintf("Search Space: %d", m.solver.SearchSpace()), m.suggestionTable())

	body := s.Box.Render(title + "\n\n" + strings.Join(lines, "\n"))

	footer := append([]string(nil), screenPrompts[m.screen]...)
	if m.showHelp {
		footer = append(footer, helpText...)
	}
	if m.failed {
		footer = append(footer, "", s.Error.Render(screenErrors[m.screen]))
	}
	return body + "\n" + strings.Join(footer, "\n") + "\n"
}

var helpText = []string{
	"",
	"  -r  re-run the solver        1  set the green pattern",
	"  2   add a yellow sequence    3  add black letters",
	"  4   clear yellow sequences   5  clear black letters",
	"  -n  start over               -b back to the main screen",
	"  -x  quit",
}

func (m *Menu) suggestionTable() string {
	rows := make([][]string, m.top)
	top := m.solver.Suggestions().Top(m.top)
	for i := range rows {
		if i < len(top) {
			rows[i] = []string{strconv.Itoa(i+1) + ".", top[i].Word, top[i].FrequencyString()}
		} else {
			rows[i] = []string{"", "", ""}
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.styles.Muted).
		Headers("", "word", "frequency").
		Rows(rows...).
		String()
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
