/*
File    : wisp/repl/repl.go
Package repl implements the interactive Read-Eval-Print Loop supplement
described in SPEC_FULL.md §4. Unlike `evaluate`'s single-expression
contract, the REPL parses each line as a program and keeps one
persistent environment for the life of the session, so `var`/`if`/
`while`/blocks carry state across lines the way `run` would over a
whole file.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wisp-lang/wisp/interpreter"
	"github.com/wisp-lang/wisp/lexer"
	"github.com/wisp-lang/wisp/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/version/prompt configuration for an interactive
// session, mirroring the teacher's Repl struct.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner and configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner displays the welcome banner and usage instructions.
func (r *Repl) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Wisp!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit, '/env' to show bindings.")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop over reader/writer, which may be
// os.Stdin/os.Stdout or a network connection (see SPEC_FULL.md §4's
// `wisp server` mode).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	in := interpreter.New()
	in.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		if line == "/env" {
			for _, binding := range in.Globals.Dump() {
				cyanColor.Fprintf(writer, "%s\n", binding)
			}
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, in)
	}
}

// executeWithRecovery parses and evaluates one line, reporting errors
// in red and continuing the loop rather than exiting — the REPL is the
// one place a parse or runtime error shouldn't end the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, in *interpreter.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lex := lexer.New(line)
	lex.SetWriter(writer)
	tokens := lex.ScanTokens()
	if lex.HadErrors() {
		return
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	if err := in.Interpret(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
