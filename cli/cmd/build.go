package cmd

import (
	"context"
	"strconv"

	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/HexExecute/sparse-voxel-octree/util"
	"github.com/HexExecute/sparse-voxel-octree/util/log"
	"github.com/HexExecute/sparse-voxel-octree/voxel"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	buildTrees int
	buildDepth uint8
)

type buildResult struct {
	Tree       int    `json:"tree"`
	FirstVoxel uint64 `json:"firstVoxel"`
	octree.NodeStats
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build trees concurrently from a single voxel counter",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := sessionContext("build")
		counter := newCounter()
		results, err := buildConcurrently(ctx, counter, buildTrees, buildDepth)
		checkErr(err)
		log.Infow(ctx, "built trees", "trees", buildTrees, "minted", counter.Peek()-seed)

		out := cmd.OutOrStdout()
		if jsonOutput {
			checkErr(json.NewEncoder(out).Encode(results))
			return
		}
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{
				strconv.Itoa(r.Tree),
				strconv.FormatUint(r.FirstVoxel, 10),
				strconv.Itoa(r.Branches),
				strconv.Itoa(r.Leaves),
				strconv.Itoa(int(r.Height)),
			})
		}
		util.PrintTable(out, []string{"tree", "first voxel", "branches", "leaves", "height"}, rows)
	},
}

// buildConcurrently builds n trees of the given depth in parallel, all minting
// from counter.
func buildConcurrently(ctx context.Context, counter *voxel.Counter, n int, depth uint8) ([]buildResult, error) {
	results := make([]buildResult, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := octree.New(depth, octree.WithCounter(counter), octree.WithCoordinatePolicy(policy()))
			if err != nil {
				return err
			}
			first, err := tree.Get(0, 0, 0)
			if err != nil {
				return err
			}
			log.Debugw(ctx, "built tree", "tree", i, "first", first.Index)
			results[i] = buildResult{Tree: i, FirstVoxel: first.Index, NodeStats: tree.Stats()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().IntVarP(&buildTrees, "trees", "n", 4, "Number of trees")
	buildCmd.Flags().Uint8VarP(&buildDepth, "depth", "d", 3, "Tree depth")
}
