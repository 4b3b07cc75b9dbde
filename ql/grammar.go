package ql

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
This file contains a participle grammar for the octree script language. A
script is a sequence of statements, each optionally terminated by a semicolon:

	create 2;
	insert 0 0 0 depth 1 voxel 9999;
	insert 3 3 3 depth 2 empty;
	insert 2 2 2 depth 1 fill 1;
	get 0 0 0;
	grow 3;
	print;
	stats;
	metrics;

Comments run from # to the end of the line.
*/

////////////////////////////////////////////////////////////////////////////////

var (
	Options = []participle.Option{ // nolint:gochecknoglobals
		participle.Lexer(
			lexer.MustSimple([]lexer.SimpleRule{
				{Name: "comment", Pattern: `#[^\n]*`},
				{Name: "Word", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
				{Name: "whitespace", Pattern: `\s+`},
				{Name: "Operators", Pattern: `;`},
				{Name: "Integer", Pattern: `[0-9]+`},
			}),
		),
	}
)

// Script represents a sequence of statements.
type Script struct {
	Statements []*Statement `@@*`
}

// Statement represents a single statement. Exactly one field is set.
type Statement struct {
	Create  *Create `( @@`
	Get     *Get    `| @@`
	Insert  *Insert `| @@`
	Grow    *Grow   `| @@`
	Print   bool    `| @"print"`
	Stats   bool    `| @"stats"`
	Metrics bool    `| @"metrics" )`
	End     string  `";"?`
}

// Create builds a new tree of the given depth.
type Create struct {
	Depth uint8 `"create" @Integer`
}

// Point is a coordinate triple.
type Point struct {
	X uint32 `@Integer`
	Y uint32 `@Integer`
	Z uint32 `@Integer`
}

// Get looks up the voxel at a point.
type Get struct {
	Point Point `"get" @@`
}

// Insert writes content at a point, depth levels below the root.
type Insert struct {
	Point   Point   `"insert" @@`
	Depth   uint8   `"depth" @Integer`
	Content Content `@@`
}

// Content is the node written by an insert: a voxel, an empty leaf, or a
// fully expanded subtree of the given height.
type Content struct {
	Voxel *uint64 `( "voxel" @Integer`
	Empty bool    `| @"empty"`
	Fill  *uint8  `| "fill" @Integer )`
}

// Grow raises the depth of the tree.
type Grow struct {
	Depth uint8 `"grow" @Integer`
}

// NewParser returns a new script parser.
func NewParser() *participle.Parser[Script] {
	return participle.MustBuild[Script](Options...)
}
