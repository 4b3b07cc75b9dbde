package cmd

import (
	"fmt"

	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/spf13/cobra"
)

var demoDepth uint8

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a tree and print lookups at the corners of the first octant",
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := octree.New(demoDepth,
			octree.WithCounter(newCounter()),
			octree.WithCoordinatePolicy(policy()),
		)
		checkErr(err)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tree of depth %d, side %d\n", tree.MaxDepth(), tree.Side())
		for z := uint32(0); z < 2; z++ {
			for y := uint32(0); y < 2; y++ {
				for x := uint32(0); x < 2; x++ {
					v, err := tree.Get(x, y, z)
					if err != nil {
						printError(err.Error())
						continue
					}
					fmt.Fprintf(out, "get%s = %s\n", formatPoint(x, y, z), formatVoxel(v))
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Uint8VarP(&demoDepth, "depth", "d", 2, "Tree depth")
}
