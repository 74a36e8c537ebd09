/*
File    : go-mix/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the GoMix-Lox interpreter.
It provides three modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Lox source files from the command line
3. Server Mode: A TCP listener handing each connection its own REPL session

The interpreter uses a scanner-parser-resolver-interpreter pipeline to
process Lox code.
*/
package main

import (
	"io"
	"net"
	"os"

	"github.com/akashmaji946/go-mix/interpreter"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/repl"
	"github.com/akashmaji946/go-mix/resolver"
	"github.com/akashmaji946/go-mix/value"
	"github.com/fatih/color"
)

// VERSION represents the current version of the GoMix-Lox interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode, per the language's
// conventional `> ` prompt.
var PROMPT = "> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
              GoMix-Lox
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the GoMix-Lox interpreter.
//
// Usage:
//
//	go-mix                 - Start in REPL (interactive) mode
//	go-mix <filename>      - Execute the specified Lox source file
//	go-mix server <port>   - Start a REPL server on the given TCP port
//	go-mix --help          - Display help information
//	go-mix --version       - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: go-mix server <port>\n")
				os.Exit(1)
			}
			port := os.Args[2]
			startServer(port)
			return
		}

		fileName := arg
		runFile(fileName)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

// showHelp displays the help information for the GoMix-Lox interpreter.
func showHelp() {
	cyanColor.Println("GoMix-Lox - A tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-mix                    Start interactive REPL mode")
	yellowColor.Println("  go-mix <path-to-file>     Execute a Lox file (.lox)")
	yellowColor.Println("  go-mix server <port>      Start REPL server on specified port")
	yellowColor.Println("  go-mix --help             Display this help message")
	yellowColor.Println("  go-mix --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	yellowColor.Println("  .env                      Show the global environment's bindings")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  go-mix                    # Start REPL")
	yellowColor.Println("  go-mix samples/fib.lox")
	yellowColor.Println("  go-mix server 8080        # Start REPL server on port 8080")
}

// showVersion displays the version information for the GoMix-Lox interpreter.
func showVersion() {
	cyanColor.Println("GoMix-Lox - A tree-walking Lox interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Lox source file.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeSource(string(fileContent), os.Stdout, true)
}

// startServer listens on port and hands each accepted connection its own
// REPL instance.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("GoMix-Lox REPL server listening on :%s\n", port)
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

// handleClient runs an independent REPL session over one accepted
// connection. Each connection gets its own interpreter and therefore its
// own global environment — sessions never share state.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeSource runs one full program through the scan/parse/resolve/
// interpret pipeline, writing `print` output to out. When exitOnFault is
// true (file mode) a fault at any stage exits the process with status 1;
// the REPL instead drives its own per-line pipeline in repl.Start.
func executeSource(source string, out io.Writer, exitOnFault bool) {
	tokens, scanErr := lexer.NewLexer(source).ScanTokens()
	if scanErr != nil {
		redColor.Fprintf(os.Stderr, "[SCAN ERROR] %s\n", scanErr.Error())
		if exitOnFault {
			os.Exit(1)
		}
		return
	}

	stmts, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", parseErr.Error())
		if exitOnFault {
			os.Exit(1)
		}
		return
	}

	res := resolver.New()
	if resolveErr := res.Resolve(stmts); resolveErr != nil {
		redColor.Fprintf(os.Stderr, "[RESOLVE ERROR] %s\n", resolveErr.Error())
		if exitOnFault {
			os.Exit(1)
		}
		return
	}

	it := interpreter.New(out)
	it.SetDistances(res.Distances)
	result := it.Interpret(stmts)

	if errVal, ok := result.(*value.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errVal.String())
		if exitOnFault {
			os.Exit(1)
		}
	}
}
