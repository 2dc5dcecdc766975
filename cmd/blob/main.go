// Command blob is a line-oriented text editor, which aims to be simple and
// effective. It reads single-letter commands from standard input, one prompt
// per input line, and edits the file named on the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/term"

	"github.com/tsoa/blob"
)

// Version information (set via ldflags during build).
var version = "dev"

const rcName = ".blobrc"

const commandList = "'n' (next): go to the next line.\n" +
	"'b' (back): go to the previous line.\n" +
	"'p' (print): print the current line.\n" +
	"'i' (insert): insert lines after the current line until interrupted.\n" +
	"'l' (list): list the contents of the file.\n" +
	"'d' (delete): delete the current line.\n" +
	"'q' (quit): quit the editor.\n" +
	"'w' (write): write buffer to file.\n" +
	"'h' (help): print this message.\n"

const verboseHelp = "\nBlob\n" +
	"A line-oriented text editor, which aims to be simple and effective.\n\n" +
	commandList +
	"\nYou can string together commands, like so: 'npi' (next, print, insert).\n"

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var writeConfig bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to JSON rc file (default ~/"+rcName+")")
	flag.BoolVar(&writeConfig, "write-config", false, "Write a default rc file and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Blob - a line-oriented text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: blob [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n%s", commandList)
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("blob %s\n", version)
		return 0
	}

	if configPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configPath = filepath.Join(home, rcName)
		}
	}

	if writeConfig {
		if configPath == "" {
			fmt.Fprintln(os.Stderr, "blob: no rc path available")
			return 1
		}
		if err := blob.WriteDefaultConfig(blob.DefaultFileSystem, configPath); err != nil {
			fmt.Fprintf(os.Stderr, "blob: %v\n", err)
			return 1
		}
		fmt.Printf("wrote %s\n", configPath)
		return 0
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 1
	}

	cfg := blob.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = blob.LoadConfig(blob.DefaultFileSystem, configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "blob: %v\n", err)
			return 1
		}
	}

	help := commandList
	if cfg.VerboseHelp {
		help = verboseHelp
	}

	// The interrupt handler only records the cancellation; insertion mode
	// polls it. Outside insertion mode the token is ignored.
	cancel := &blob.CancelToken{}
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		for range interrupts {
			cancel.Cancel()
		}
	}()

	// Commands and insertion text come from the same reader, so bytes
	// buffered while reading a command line are not lost to insertion.
	input := blob.NewLineReader(os.Stdin)

	editor, err := blob.Open(blob.Options{
		Path:   flag.Arg(0),
		Input:  input,
		Output: os.Stdout,
		Cancel: cancel,
		Help:   help,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "blob: %v\n", err)
		return 1
	}
	defer editor.Close()

	prompt := cfg.Prompt
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = ""
	}

	for {
		if prompt != "" {
			fmt.Print(prompt)
		}
		line, err := input.ReadLine()
		if err != nil {
			// End-of-input at the prompt ends the session cleanly.
			return 0
		}

		sig, err := editor.Run(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "blob: %v\n", err)
			return 1
		}
		switch sig {
		case blob.SignalEndOfBuffer:
			fmt.Print("EOF")
		case blob.SignalStartOfBuffer:
			fmt.Print("START")
		case blob.SignalQuit:
			return 0
		}
	}
}
