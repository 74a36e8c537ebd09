/*
File    : go-mix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Lox
interpreter. The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the scanner/parser/resolver/interpreter pipeline to
execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-mix/interpreter"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/resolver"
	"github.com/akashmaji946/go-mix/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoMix-Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.env' to dump the global environment")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. The interpreter persists across lines —
// variables and functions declared on one line are visible to later ones —
// but each line gets its own scanner, parser, and resolver pass.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interpreter.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if line == ".env" {
			rl.SaveHistory(line)
			r.dumpEnv(writer, it)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, it)
	}
}

// dumpEnv prints every binding declared directly in the interpreter's
// global environment.
func (r *Repl) dumpEnv(writer io.Writer, it *interpreter.Interpreter) {
	names := it.GlobalEnv().Names()
	if len(names) == 0 {
		cyanColor.Fprintln(writer, "(no bindings)")
		return
	}
	for _, name := range names {
		v, _ := it.GlobalEnv().Get(name)
		cyanColor.Fprintf(writer, "%s = %s\n", name, v.String())
	}
}

// evalLine scans, parses, and resolves one line fresh, then interprets it
// against the REPL's persistent interpreter state.
func (r *Repl) evalLine(writer io.Writer, line string, it *interpreter.Interpreter) {
	tokens, scanErr := lexer.NewLexer(line).ScanTokens()
	if scanErr != nil {
		redColor.Fprintf(writer, "%s\n", scanErr.Error())
		return
	}

	stmts, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		redColor.Fprintf(writer, "%s\n", parseErr.Error())
		return
	}

	res := resolver.New()
	if resolveErr := res.Resolve(stmts); resolveErr != nil {
		redColor.Fprintf(writer, "%s\n", resolveErr.Error())
		return
	}
	it.SetDistances(res.Distances)

	result := it.Interpret(stmts)
	if errVal, ok := result.(*value.Error); ok {
		redColor.Fprintf(writer, "%s\n", errVal.String())
		return
	}
	if result != value.NilValue {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
