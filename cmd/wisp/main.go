/*
File    : wisp/cmd/wisp/main.go
Package main is the entry point for the Wisp interpreter. It dispatches
on os.Args to the four required pipeline subcommands (tokenize, parse,
evaluate, run) plus the supplemental repl/server modes and --help/
--version flags, per SPEC_FULL.md §2.1 and §4.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/wisp-lang/wisp/interpreter"
	"github.com/wisp-lang/wisp/lexer"
	"github.com/wisp-lang/wisp/parser"
	"github.com/wisp-lang/wisp/printer"
	"github.com/wisp-lang/wisp/repl"
)

// VERSION is the current version of the Wisp interpreter.
var VERSION = "v0.1.0"

// AUTHOR is shown by --version and the REPL banner.
var AUTHOR = "the wisp-lang maintainers"

// LICENSE is the software license shown by --version.
var LICENSE = "MIT"

// PROMPT is the interactive REPL prompt.
var PROMPT = "wisp >>> "

// BANNER is the ASCII banner shown at REPL startup.
var BANNER = `
 __        __ _____ ____  ____
 \ \      / /|_ _| / ___||  _ \
  \ \ /\ / /  | |  \___ \| |_) |
   \ V  V /   | |   ___) |  __/
    \_/\_/   |___| |____/|_|
`

// LINE is a separator used for visual formatting in banners.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "repl":
		repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT).Start(os.Stdin, os.Stdout)
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: wisp server <port>\n")
			os.Exit(1)
		}
		startServer(os.Args[2])
	case "tokenize", "parse", "evaluate", "run":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "Usage: wisp %s <filename>\n", os.Args[1])
			os.Exit(1)
		}
		runCommand(os.Args[1], os.Args[2])
	default:
		redColor.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func showUsage() {
	redColor.Fprintf(os.Stderr, "Usage: wisp <tokenize|parse|evaluate|run> <filename>\n")
	redColor.Fprintf(os.Stderr, "       wisp <repl|server <port>|--help|--version>\n")
}

func showHelp() {
	cyanColor.Println("Wisp - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  wisp tokenize <file>     Print the token sequence for a file")
	yellowColor.Println("  wisp parse <file>        Print the parenthesized-prefix AST of an expression")
	yellowColor.Println("  wisp evaluate <file>     Evaluate a single expression and print the result")
	yellowColor.Println("  wisp run <file>          Execute a full program")
	yellowColor.Println("  wisp repl                Start an interactive session")
	yellowColor.Println("  wisp server <port>       Start a REPL server on the given TCP port")
	yellowColor.Println("  wisp --help              Display this help message")
	yellowColor.Println("  wisp --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                    Exit the REPL")
	yellowColor.Println("  /env                      Show current environment bindings")
}

func showVersion() {
	cyanColor.Println("Wisp - a small tree-walking interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Wisp REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT).Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// runCommand reads filename and drives one of the four required
// subcommands, exiting with the codes mandated by spec §6.
func runCommand(command, filename string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[line ?] Error: %v\n", recovered)
			os.Exit(70)
		}
	}()

	source, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	switch command {
	case "tokenize":
		runTokenize(string(source))
	case "parse":
		runParse(string(source))
	case "evaluate":
		runEvaluate(string(source))
	case "run":
		runFile(string(source))
	}
}

func runTokenize(source string) {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()

	for _, tok := range tokens {
		fmt.Printf("%s %s %s\n", tok.Kind, tok.Lexeme, tok.Literal.LiteralRepr())
	}

	if lex.HadErrors() {
		os.Exit(65)
	}
	os.Exit(0)
}

func runParse(source string) {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()

	p := parser.New(tokens)
	expr := p.ParseExpression()
	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(65)
	}

	fmt.Println(printer.Print(expr))
	os.Exit(0)
}

func runEvaluate(source string) {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()

	p := parser.New(tokens)
	expr := p.ParseExpression()
	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(65)
	}

	in := interpreter.New()
	result, err := in.InterpretExpression(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(70)
	}
	fmt.Println(result)
	os.Exit(0)
}

func runFile(source string) {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(65)
	}

	in := interpreter.New()
	if err := in.Interpret(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(70)
	}
	os.Exit(0)
}
