package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"justcode/internal/steps"
	"justcode/internal/textfile"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Print a Steps file with syntax highlighting",
	Long:  `Prints a Steps source file to stdout with ANSI syntax highlighting, without starting the editor.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	f, err := textfile.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, steps.Highlight(f.Content, cfg.SyntaxTheme()))
	return nil
}
