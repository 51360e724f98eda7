// Command eva is a calculator. With an expression argument it evaluates it
// and exits; with input piped on stdin it evaluates each line; otherwise it
// runs a REPL.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/nerdypepper/eva"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

const helpText = `eva is an easy to use calculator REPL, similar to bc(1).

Operators: + - * / ^ (also **), and unary -
Functions of one argument:
  sin cos tan csc sec cot       angles, in degrees unless -radian is set
  asin acos atan                always return radians
  sinh cosh tanh asinh acosh atanh
  sqrt cbrt ln log10 exp exp2 abs ceil floor round deg rad
Functions of two arguments: log(x, base)  nroot(x, n)  min  max
Constants: e pi

_ recalls the previous answer. Adjacent values multiply, so 2pi, e2, and
2(3+4) all work. Unclosed parentheses close themselves at the end of the
line.`

func main() {
	log.SetFlags(0)
	var (
		fix    int
		base   int
		radian bool
	)
	flag.IntVar(&fix, "fix", eva.DefaultFix, "number of decimal places in the output")
	flag.IntVar(&fix, "f", eva.DefaultFix, "shorthand for -fix")
	flag.IntVar(&base, "base", eva.DefaultBase, "radix of the output, 2 to 36")
	flag.IntVar(&base, "b", eva.DefaultBase, "shorthand for -base")
	flag.BoolVar(&radian, "radian", false, "interpret angles as radians rather than degrees")
	flag.BoolVar(&radian, "r", false, "shorthand for -radian")
	flag.Parse()
	if fix < 0 {
		log.Fatalf("eva: invalid fix %d", fix)
	}
	if base < 2 || base > 36 {
		log.Fatalf("eva: invalid base %d, must be 2 to 36", base)
	}

	ctx := eva.NewContext(eva.Fix(fix), eva.Base(base), eva.Radians(radian))
	switch {
	case flag.NArg() > 0:
		os.Exit(command(ctx, strings.Join(flag.Args(), " ")))
	case !term.IsTerminal(int(os.Stdin.Fd())):
		os.Exit(batch(ctx, os.Stdin))
	default:
		repl(ctx)
	}
}

// command evaluates a single expression from the command line and returns
// the process exit status.
func command(ctx *eva.Context, input string) int {
	ctx.SetPrev(0)
	ans, err := ctx.Evaluate(input)
	switch {
	case errors.Is(err, eva.ErrHelp):
		fmt.Println(helpText)
	case err != nil:
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		return 1
	default:
		fmt.Println(ctx.Format(ans))
	}
	return 0
}

// batch evaluates piped input line by line, bc style, threading the previous
// answer from line to line. A failed line reports to stderr and poisons the
// exit status but does not stop the run.
func batch(ctx *eva.Context, r io.Reader) int {
	status := 0
	ctx.SetPrev(0)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ans, err := ctx.Evaluate(line)
		switch {
		case errors.Is(err, eva.ErrHelp):
			fmt.Println(helpText)
		case err != nil:
			fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
			status = 1
		default:
			ctx.SetPrev(ans)
			fmt.Println(ctx.Format(ans))
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("eva: reading stdin: %v", err)
		status = 1
	}
	return status
}

// repl runs the interactive loop: prompt, evaluate, print, remember.
func repl(ctx *eva.Context) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	} else {
		fmt.Println("No previous history.")
	}
	prevPath := prevAnsPath()
	writePrevAns(prevPath, 0)

	for {
		input, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("CTRL-C")
			} else if !errors.Is(err, io.EOF) {
				log.Printf("eva: reading line: %v", err)
			}
			break
		}
		if input != "" {
			ln.AppendHistory(input)
		}
		ans, err := ctx.Evaluate(input)
		switch {
		case errors.Is(err, eva.ErrHelp):
			fmt.Println(helpText)
		case err != nil:
			fmt.Println(errStyle.Render(err.Error()))
		default:
			ctx.SetPrev(ans)
			fmt.Println(ctx.Format(ans))
			writePrevAns(prevPath, ans)
		}
	}

	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	} else {
		log.Printf("eva: writing history: %v", err)
	}
}

// writePrevAns caches the latest answer where other tools can read it. A
// failure shouldn't kill a calculator session, so it only warns.
func writePrevAns(path string, ans float64) {
	if path == "" {
		return
	}
	s := strconv.FormatFloat(ans, 'f', -1, 64) + "\n"
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		log.Printf("eva: writing previous answer: %v", err)
	}
}

// historyPath returns the path of the persistent REPL history, preferring
// the XDG data directory and falling back to the home directory.
func historyPath() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "history.txt"
		}
		dir = filepath.Join(home, ".local", "share")
	}
	dir = filepath.Join(dir, "eva")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return homeFile("history.txt")
	}
	return filepath.Join(dir, "history.txt")
}

// prevAnsPath returns the path of the previous-answer cache file, preferring
// the user cache directory and falling back to the home directory.
func prevAnsPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return homeFile("previous_ans.txt")
	}
	dir = filepath.Join(dir, "eva")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return homeFile("previous_ans.txt")
	}
	return filepath.Join(dir, "previous_ans.txt")
}

// homeFile returns name under the home directory, or name alone when even
// that is unknown.
func homeFile(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
