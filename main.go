package main

import "github.com/HexExecute/sparse-voxel-octree/cli/cmd"

func main() {
	cmd.Execute()
}
