package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudcmds/marmoset/ast"
	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/compiler"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || !isTerminal(os.Stdout) {
		color.NoColor = true
	}
	configureLogging()
}

// input is a document read from a file or stdin.
type input struct {
	name string
	data []byte
}

// readInput determines where the document comes from. There are two
// possibilities: --stdin, or a path as args[0].
func readInput(args []string, stdin io.Reader) (*input, error) {
	useStdin := viper.GetBool("stdin")
	pathSupplied := len(args) > 0
	switch {
	case pathSupplied && useStdin:
		return nil, errors.New("multiple input sources specified")
	case useStdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return &input{name: "<stdin>", data: data}, nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return &input{name: filepath.Base(args[0]), data: data}, nil
	default:
		return nil, errors.New("no input specified (pass a file or --stdin)")
	}
}

func compilerConfig(in *input) *compiler.Config {
	return &compiler.Config{
		Filename: in.name,
		Logger:   &log.Logger,
	}
}

// compileInput decodes the syntax tree document and compiles it.
func compileInput(in *input) (*bytecode.Code, error) {
	node, err := ast.DecodeFile(in.name, in.data)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(node, compilerConfig(in))
}

// loadArtifact decodes a serialized bytecode artifact, trying JSON first and
// then CBOR.
func loadArtifact(in *input) (*bytecode.Code, error) {
	if json.Valid(in.data) {
		return bytecode.Unmarshal(in.data)
	}
	return bytecode.UnmarshalBinary(in.data)
}

// getOutputJSON renders the artifact as indented JSON. With pretty set the
// JSON is colorized for a terminal and can no longer be loaded as bytecode.
func getOutputJSON(code *bytecode.Code, pretty bool) ([]byte, error) {
	data, err := bytecode.Marshal(code)
	if err != nil {
		return nil, err
	}
	if !pretty {
		return json.MarshalIndent(json.RawMessage(data), "", "  ")
	}
	return prettyjson.Format(data)
}
