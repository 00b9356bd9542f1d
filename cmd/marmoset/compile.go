package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/dis"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var outputFormats = []string{"text", "json", "cbor"}

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a syntax tree document to bytecode",
	Long: `Compile a syntax tree document to bytecode.

The document is JSON or YAML. The artifact is written to stdout, or to the
file named by --out, as a disassembly listing (text), JSON or CBOR.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		code, err := compileInput(in)
		if err != nil {
			return err
		}
		format := viper.GetString("output")
		path := viper.GetString("out")
		if path == "" {
			return writeArtifact(cmd.OutOrStdout(), code, format, !color.NoColor)
		}
		return writeArtifactFile(path, code, format)
	},
}

func init() {
	compileCmd.Flags().StringP("output", "o", "text", "Output format: text, json or cbor")
	compileCmd.Flags().String("out", "", "Write the artifact to a file")
	viper.BindPFlag("output", compileCmd.Flags().Lookup("output"))
	viper.BindPFlag("out", compileCmd.Flags().Lookup("out"))
	compileCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

// writeArtifactFile writes the artifact to path. Files never get color, so
// that they can be loaded back as bytecode.
func writeArtifactFile(path string, code *bytecode.Code, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeArtifact(f, code, format, false); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeArtifact(w io.Writer, code *bytecode.Code, format string, pretty bool) error {
	switch strings.ToLower(format) {
	case "", "text":
		io.WriteString(w, code.String())
		if code.ConstantCount() > 0 {
			fmt.Fprintln(w)
			dis.PrintConstants(code, w)
		}
		stats := code.Stats()
		fmt.Fprintf(w, "\n%d instructions, %d bytes, %d constants\n",
			stats.InstructionCount, stats.ByteCount, stats.ConstantCount)
		return nil
	case "json":
		data, err := getOutputJSON(code, pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "cbor":
		data, err := bytecode.MarshalBinary(code)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
