package cmd

import (
	"io"
	"os"

	"github.com/HexExecute/sparse-voxel-octree/util/log"
	"github.com/spf13/cobra"
)

var runExpression string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute an octree script from a file, stdin, or -e",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := sessionContext("run")
		src := runExpression
		switch {
		case src != "" && len(args) > 0:
			bailf("cannot specify both a file and -e")
		case src != "":
		case len(args) == 0 || args[0] == "-":
			data, err := io.ReadAll(os.Stdin)
			checkErr(err)
			src = string(data)
		default:
			data, err := os.ReadFile(args[0])
			checkErr(err)
			src = string(data)
			ctx = log.AddTags(ctx, "file", args[0])
		}
		checkErr(newExecutor(cmd.OutOrStdout()).Run(ctx, src))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runExpression, "expression", "e", "", "Script to execute")
}
