// Command xcover-demo is the interactive CLI harness for the exact-cover
// solver: a table of named test cases, timed and run end to end, with
// colorized pass/fail output, followed by a short tour of the algorithm's
// moving parts. If a problem definition is piped in on stdin it is solved
// first, before the built-in test cases run.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/corwin-vance/xcover/problem"
	"github.com/corwin-vance/xcover/solver"
)

func main() {
	fmt.Println("Exact Cover (Algorithm M) Demonstration")
	fmt.Println("=======================================")

	if isStdoutTTY() {
		fmt.Println(color.HiBlackString("(colorized output enabled)"))
	}

	runStdinProblem()

	for i, tc := range testCases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Test Case"), i+1, color.HiYellowString(tc.name))
		runTestCase(tc.problem())
		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}

	demonstrateAlgorithmDetails()
}

type testCase struct {
	name    string
	problem func() *problem.Problem[int, string]
}

var testCases = []testCase{
	{name: "Knuth's canonical 7-item exact cover instance", problem: knuthProblem},
	{name: "3-item instance with 4 distinct exact covers", problem: fourSolutionProblem},
}

// runStdinProblem reads an optional problem definition from stdin, in the
// format documented by stdinProblemHelp, and solves it if one was supplied.
// A TTY gets the format printed first; an empty or absent stdin is silently
// skipped so the built-in test cases still run.
func runStdinProblem() {
	if isStdinTTY() {
		fmt.Println(stdinProblemHelp)
	}

	p, err := readProblem(os.Stdin)
	if err != nil {
		fmt.Printf("%s: %v\n", color.HiRedString("✗ stdin problem"), err)
		return
	}
	if p == nil {
		return
	}

	fmt.Printf("\n%s\n", color.HiBlueString("Problem from stdin"))
	runTestCase(p)
	fmt.Println(color.HiBlackString("─────────────────────────────────────"))
}

const stdinProblemHelp = `Enter a problem definition:
  one line per item:   <name> <min> <max>
  a blank line
  one line per option: <name> <item> [item...]
(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows), or pipe
nothing to skip straight to the built-in demonstration.`

// readProblem parses the item/option text format documented in
// stdinProblemHelp from r. It returns a nil Problem, with no error, if r
// contains no item lines at all -- the signal that no custom problem was
// supplied on stdin.
func readProblem(r io.Reader) (*problem.Problem[string, string], error) {
	scanner := bufio.NewScanner(r)

	p := problem.New[string, string]()
	itemCount := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("item line %q: want \"name min max\"", line)
		}
		min, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("item line %q: invalid min: %w", line, err)
		}
		max, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("item line %q: invalid max: %w", line, err)
		}
		if err := p.AddItem(fields[0], min, max); err != nil {
			return nil, fmt.Errorf("item line %q: %w", line, err)
		}
		itemCount++
	}
	if itemCount == 0 {
		return nil, scanner.Err()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("option line %q: want \"name item [item...]\"", line)
		}
		if err := p.AddOption(fields[0], fields[1:]); err != nil {
			return nil, fmt.Errorf("option line %q: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return p, nil
}

func runTestCase[E comparable](p *problem.Problem[E, string]) {
	m, _, err := p.Build()
	if err != nil {
		fmt.Printf("%s: %v\n", color.HiRedString("✗ construction failed"), err)
		return
	}
	stats := solver.Stats{MatrixSize: solver.NewMatrixInfo(m)}

	d := solver.New[E, string](p)
	defer d.Close()

	start := time.Now()
	if err := d.Run(); err != nil {
		fmt.Printf("%s: %v\n", color.HiRedString("✗ construction failed"), err)
		return
	}

	var solutions [][]string
	for ev := range d.Events() {
		switch ev.Kind {
		case solver.SolutionFound:
			sol := append([]string(nil), ev.Options...)
			sort.Strings(sol)
			solutions = append(solutions, sol)
		case solver.Aborted:
			stats.Aborted = true
		case solver.Finished:
		}
	}
	stats.TimeElapsed = time.Since(start)
	stats.SolutionsFound = len(solutions)

	fmt.Printf("%s (%.3fms)\n", color.HiGreenString("✓ search complete"), float64(stats.TimeElapsed.Nanoseconds())/1e6)
	for _, sol := range solutions {
		fmt.Printf("  %v\n", sol)
	}
	stats.Print()
}

// knuthProblem is Knuth's canonical 7-item, 6-option instance with a single
// exact cover.
func knuthProblem() *problem.Problem[int, string] {
	p := problem.New[int, string]()
	p.AddExactItems([]int{1, 2, 3, 4, 5, 6, 7})
	p.AddOption("A", []int{3, 5, 6})
	p.AddOption("B", []int{1, 4, 7})
	p.AddOption("C", []int{2, 3, 6})
	p.AddOption("D", []int{1, 4})
	p.AddOption("E", []int{2, 7})
	p.AddOption("F", []int{4, 5, 7})
	return p
}

// fourSolutionProblem is a small 3-item instance with options A={1,2,3}
// B={1} C={2} D={3} E={1,2} F={2,3}, which has exactly 4 distinct exact
// covers.
func fourSolutionProblem() *problem.Problem[int, string] {
	p := problem.New[int, string]()
	p.AddExactItems([]int{1, 2, 3})
	p.AddOption("A", []int{1, 2, 3})
	p.AddOption("B", []int{1})
	p.AddOption("C", []int{2})
	p.AddOption("D", []int{3})
	p.AddOption("E", []int{1, 2})
	p.AddOption("F", []int{2, 3})
	return p
}

func isStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func demonstrateAlgorithmDetails() {
	fmt.Printf("\n%s\n", color.HiCyanString("Algorithm M Details"))
	fmt.Println(color.HiCyanString("===================="))

	fmt.Println("\nAlgorithm M generalizes Algorithm X (Dancing Links) by letting each")
	fmt.Println("column declare a [min, max] multiplicity instead of requiring exactly")
	fmt.Println("one selected row. Classical exact cover is the special case min=max=1.")

	fmt.Printf("\n%s\n", color.HiYellowString("1. Matrix Structure:"))
	fmt.Println("   • One column per item, one row per option")
	fmt.Println("   • A node sits at (row, column) wherever an option covers that item")

	fmt.Printf("\n%s\n", color.HiYellowString("2. Selection with weight:"))
	fmt.Println("   • Each column tracks a running weight: how many selected rows cross it")
	fmt.Println("   • A column is covered (removed) only once weight reaches its max")
	fmt.Println("   • Rows that won't reach max yet are tweaked, not covered, so the")
	fmt.Println("     search can still pick more rows crossing that column")

	fmt.Printf("\n%s\n", color.HiYellowString("3. Key operations:"))
	fmt.Println("   • cover/uncover: remove/restore a column and every row crossing it")
	fmt.Println("   • tweak/untweak: remove/restore one row without touching the column")
	fmt.Println("   • MRV heuristic: always branch on the column with the fewest options left")

	fmt.Printf("\n%s\n", color.HiYellowString("4. Concurrency:"))
	fmt.Println("   • Each solver.Driver runs its search on a dedicated goroutine")
	fmt.Println("   • Pause/Abort/RequestProgress are cooperative signals honored at")
	fmt.Println("     each recursion level, never preempting mid-branch")

	p := knuthProblem()
	m, names, err := p.Build()
	if err != nil {
		fmt.Println(color.HiRedString("build failed: %v", err))
		return
	}
	fmt.Printf("\n%s\n", color.HiGreenString("Example Matrix Structure:"))
	fmt.Printf("Columns: %s  Rows: %s  Options: %v\n",
		color.HiYellowString("%d", m.ColumnCount()), color.HiYellowString("%d", m.RowCount()), names)
}
