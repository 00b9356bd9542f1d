package main

import (
	"fmt"

	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/dis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var disCmd = &cobra.Command{
	Use:   "dis [file]",
	Short: "Disassemble bytecode",
	Long: `Compile a syntax tree document and print its disassembly.

With --bytecode the input is a JSON or CBOR artifact written by
"marmoset compile" instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		var code *bytecode.Code
		if viper.GetBool("bytecode") {
			code, err = loadArtifact(in)
		} else {
			code, err = compileInput(in)
		}
		if err != nil {
			return err
		}
		instructions, err := dis.Disassemble(code)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		dis.Print(instructions, out)
		if viper.GetBool("constants") && code.ConstantCount() > 0 {
			fmt.Fprintln(out)
			dis.PrintConstants(code, out)
		}
		return nil
	},
}

func init() {
	disCmd.Flags().Bool("bytecode", false, "Input is a compiled artifact")
	disCmd.Flags().Bool("constants", false, "Also print the constant pool")
	viper.BindPFlag("bytecode", disCmd.Flags().Lookup("bytecode"))
	viper.BindPFlag("constants", disCmd.Flags().Lookup("constants"))
}
