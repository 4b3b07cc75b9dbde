package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/HexExecute/sparse-voxel-octree/ql"
	"github.com/HexExecute/sparse-voxel-octree/util"
	"github.com/HexExecute/sparse-voxel-octree/util/log"
	"github.com/HexExecute/sparse-voxel-octree/voxel"
	"github.com/alecthomas/participle/v2"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
)

/*
The executor module runs octree scripts. A script is parsed with the ql grammar
and its statements are applied in order to a single tree owned by the executor.
Results of get, print, stats and metrics statements are written to the
executor's writer, either as tables or as one JSON document per statement.

Execution stops at the first failing statement. Statements before it remain
applied.
*/

////////////////////////////////////////////////////////////////////////////////

// ErrNoTree is returned when a statement needs a tree before one is created.
var ErrNoTree = errors.New("no tree: run create first")

// Executor applies script statements to an octree.
type Executor struct {
	w        io.Writer
	tree     *octree.Octree
	parser   *participle.Parser[ql.Script]
	counter  *voxel.Counter
	policy   octree.CoordinatePolicy
	json     bool
	width    int
	gatherer prometheus.Gatherer
}

// New returns an executor writing results to w.
func New(w io.Writer, opts ...Option) *Executor {
	options := Options{
		Counter:  voxel.Default,
		Policy:   octree.Reject,
		Gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Executor{
		w:        w,
		tree:     options.Tree,
		parser:   ql.NewParser(),
		counter:  options.Counter,
		policy:   options.Policy,
		json:     options.JSON,
		width:    options.TermWidth,
		gatherer: options.Gatherer,
	}
}

// Tree returns the executor's tree, or nil if none has been created.
func (e *Executor) Tree() *octree.Octree {
	return e.tree
}

// Run parses src and executes its statements in order.
func (e *Executor) Run(ctx context.Context, src string) error {
	script, err := e.parser.ParseString("", src)
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	for i, stmt := range script.Statements {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}

// Execute applies a single statement.
func (e *Executor) Execute(ctx context.Context, stmt *ql.Statement) error {
	switch {
	case stmt.Create != nil:
		return e.create(ctx, stmt.Create)
	case stmt.Get != nil:
		return e.get(ctx, stmt.Get)
	case stmt.Insert != nil:
		return e.insert(ctx, stmt.Insert)
	case stmt.Grow != nil:
		return e.grow(ctx, stmt.Grow)
	case stmt.Print:
		return e.print()
	case stmt.Stats:
		return e.stats()
	case stmt.Metrics:
		return e.metrics()
	default:
		return errors.New("empty statement")
	}
}

func (e *Executor) create(ctx context.Context, stmt *ql.Create) error {
	tree, err := octree.New(
		stmt.Depth,
		octree.WithCounter(e.counter),
		octree.WithCoordinatePolicy(e.policy),
	)
	if err != nil {
		return fmt.Errorf("failed to create tree: %w", err)
	}
	e.tree = tree
	log.Debugw(ctx, "created tree", "depth", tree.MaxDepth(), "side", tree.Side(), "policy", e.policy)
	return nil
}

func (e *Executor) get(ctx context.Context, stmt *ql.Get) error {
	if e.tree == nil {
		return ErrNoTree
	}
	p := stmt.Point
	v, err := e.tree.Get(p.X, p.Y, p.Z)
	if err != nil {
		return fmt.Errorf("failed to get (%d, %d, %d): %w", p.X, p.Y, p.Z, err)
	}
	log.Debugw(ctx, "get", "x", p.X, "y", p.Y, "z", p.Z, "present", v != nil)
	if e.json {
		return e.encode(lookupResult{X: p.X, Y: p.Y, Z: p.Z, Voxel: v})
	}
	index := "-"
	if v != nil {
		index = strconv.FormatUint(v.Index, 10)
	}
	e.table([]string{"x", "y", "z", "voxel"}, [][]string{{
		strconv.FormatUint(uint64(p.X), 10),
		strconv.FormatUint(uint64(p.Y), 10),
		strconv.FormatUint(uint64(p.Z), 10),
		index,
	}})
	return nil
}

func (e *Executor) insert(ctx context.Context, stmt *ql.Insert) error {
	if e.tree == nil {
		return ErrNoTree
	}
	p := stmt.Point
	var node octree.Node
	switch c := stmt.Content; {
	case c.Voxel != nil:
		node = octree.NewLeaf(voxel.New(*c.Voxel))
	case c.Fill != nil:
		room, err := e.tree.Room(stmt.Depth)
		if err != nil {
			return fmt.Errorf("failed to insert at (%d, %d, %d): %w", p.X, p.Y, p.Z, err)
		}
		if *c.Fill > room {
			err := octree.TooDeepError{Height: *c.Fill, Room: room}
			return fmt.Errorf("failed to insert at (%d, %d, %d): %w", p.X, p.Y, p.Z, err)
		}
		node = octree.Build(e.counter, *c.Fill)
	default:
		node = octree.NewEmptyLeaf()
	}
	before := e.tree.MaxDepth()
	if err := e.tree.Insert(p.X, p.Y, p.Z, node, stmt.Depth); err != nil {
		return fmt.Errorf("failed to insert at (%d, %d, %d): %w", p.X, p.Y, p.Z, err)
	}
	if after := e.tree.MaxDepth(); after != before {
		log.Infow(ctx, "tree grown by insert", "from", before, "to", after)
	}
	log.Debugw(ctx, "insert", "x", p.X, "y", p.Y, "z", p.Z, "depth", stmt.Depth, "node", node.Type())
	return nil
}

func (e *Executor) grow(ctx context.Context, stmt *ql.Grow) error {
	if e.tree == nil {
		return ErrNoTree
	}
	before := e.tree.MaxDepth()
	if err := e.tree.Grow(stmt.Depth); err != nil {
		return fmt.Errorf("failed to grow tree: %w", err)
	}
	log.Infow(ctx, "tree grown", "from", before, "to", e.tree.MaxDepth())
	return nil
}

func (e *Executor) print() error {
	if e.tree == nil {
		return ErrNoTree
	}
	if e.json {
		return e.encode(map[string]string{"tree": e.tree.String()})
	}
	_, err := fmt.Fprintln(e.w, e.tree.String())
	return err
}

func (e *Executor) stats() error {
	if e.tree == nil {
		return ErrNoTree
	}
	stats := treeStats{
		Depth:     e.tree.MaxDepth(),
		Side:      e.tree.Side(),
		NodeStats: e.tree.Stats(),
	}
	if e.json {
		return e.encode(stats)
	}
	e.table(
		[]string{"depth", "side", "branches", "leaves", "empty", "height"},
		[][]string{{
			strconv.Itoa(int(stats.Depth)),
			strconv.FormatUint(uint64(stats.Side), 10),
			strconv.Itoa(stats.Branches),
			strconv.Itoa(stats.Leaves),
			strconv.Itoa(stats.EmptyLeaves),
			strconv.Itoa(int(stats.Height)),
		}},
	)
	return nil
}

func (e *Executor) metrics() error {
	families, err := e.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	values := make(map[string]float64)
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), metricPrefix) {
			continue
		}
		total := 0.0
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		values[family.GetName()] = total
	}
	if e.json {
		return e.encode(values)
	}
	rows := make([][]string, 0, len(values))
	for _, name := range util.Okeys(values) {
		rows = append(rows, []string{name, strconv.FormatFloat(values[name], 'f', -1, 64)})
	}
	e.table([]string{"metric", "value"}, rows)
	return nil
}

func (e *Executor) encode(v any) error {
	if err := json.NewEncoder(e.w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func (e *Executor) table(headers []string, rows [][]string) {
	if e.width > 0 {
		util.Table{Headers: headers, Rows: rows}.Print(e.w, e.width)
		return
	}
	util.PrintTable(e.w, headers, rows)
}
