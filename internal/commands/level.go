package commands

import (
	"fmt"
	"io"

	"github.com/simonhull/cfx/writer"
	"github.com/spf13/cobra"
)

var levelSummaries = map[writer.Level]string{
	writer.LevelLog:     "Print text with tokens substituted and no level style",
	writer.LevelError:   "Print text in the error style (white on red)",
	writer.LevelWarn:    "Print text in the warning style (black on yellow)",
	writer.LevelInfo:    "Print text in the info style (cyan on black)",
	writer.LevelSuccess: "Print text in the success style (black on green)",
}

// LevelCmd creates the command that prints its arguments at level.
// A single "-" argument reads lines from stdin and prints each one.
func LevelCmd(level writer.Level) *cobra.Command {
	name := level.String()

	return &cobra.Command{
		Use:   name + " [text...]",
		Short: levelSummaries[level],
		Example: fmt.Sprintf(`  cfx %s "[bo]Build[re] finished"
  make 2>&1 | cfx %s -`, name, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWriter(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 && args[0] == "-" {
				lw := w.LineWriter(level)
				if _, err := io.Copy(lw, cmd.InOrStdin()); err != nil {
					return err
				}
				return lw.Flush()
			}

			return w.Emit(level, toItems(args)...)
		},
	}
}

// LevelCmds returns a LevelCmd for every level.
func LevelCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(writer.Levels))
	for _, level := range writer.Levels {
		cmds = append(cmds, LevelCmd(level))
	}
	return cmds
}
