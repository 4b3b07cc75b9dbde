package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/HexExecute/sparse-voxel-octree/executor"
	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/HexExecute/sparse-voxel-octree/util/log"
	"github.com/HexExecute/sparse-voxel-octree/voxel"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	seed       uint64
	wrap       bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "svo",
	Short: "sparse voxel octree tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(logLevel)
		checkErr(err)
		log.Configure(os.Stderr, level)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

func printError(s string) {
	color.New(color.FgRed).Fprintln(os.Stderr, "ERROR: "+s)
}

// sessionContext returns a context whose log lines carry the command name and
// a session ID unique to this invocation.
func sessionContext(command string) context.Context {
	return log.AddTags(context.Background(), "cmd", command, "session_id", uuid.New().String())
}

// policy returns the coordinate policy selected by the --wrap flag.
func policy() octree.CoordinatePolicy {
	if wrap {
		return octree.Wrap
	}
	return octree.Reject
}

// newCounter returns a counter starting at the --seed flag.
func newCounter() *voxel.Counter {
	return voxel.NewCounter(seed)
}

func newExecutor(w io.Writer) *executor.Executor {
	return executor.New(w,
		executor.WithCounter(newCounter()),
		executor.WithCoordinatePolicy(policy()),
		executor.WithJSON(jsonOutput),
	)
}

func formatVoxel(v *voxel.Voxel) string {
	if v == nil {
		return color.New(color.Faint).Sprint("empty")
	}
	return color.New(color.FgGreen).Sprint(v.String())
}

func formatPoint(x, y, z uint32) string {
	return fmt.Sprintf("(%d, %d, %d)", x, y, z)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "Log level")
	rootCmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", 0, "First voxel index minted")
	rootCmd.PersistentFlags().BoolVarP(&wrap, "wrap", "w", false, "Wrap out-of-range coordinates instead of rejecting them")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Write results as JSON")
}
