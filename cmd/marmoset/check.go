package main

import (
	"fmt"

	"github.com/cloudcmds/marmoset/ast"
	"github.com/cloudcmds/marmoset/compiler"
	"github.com/cloudcmds/marmoset/errors"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report every construct the compiler cannot lower",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		node, err := ast.DecodeFile(in.name, in.data)
		if err != nil {
			return err
		}
		err = compiler.Check(node, compilerConfig(in))
		if err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			return err
		}
		var formatted []*errors.FormattedError
		for _, e := range merr.Errors {
			var compileErr *errors.CompileError
			if errors.As(e, &compileErr) {
				formatted = append(formatted, compileErr.ToFormatted())
			} else {
				formatted = append(formatted, &errors.FormattedError{Message: e.Error()})
			}
		}
		formatter := errors.NewFormatter(!color.NoColor)
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatMultiple(formatted))
		return fmt.Errorf("%d unsupported constructs", len(merr.Errors))
	},
}
