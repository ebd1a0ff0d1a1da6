package cli

import (
	"fmt"
	"strings"

	"github.com/go-keytree/keytree/pkg/keytree"
)

// BuildCmd builds a tree from the input records, optionally prints it,
// and exports the value-carrying nodes to a flat file.
type BuildCmd struct {
	treeInput
	Format string `help:"Export format" enum:"json,csv,tsv" default:"json"`
	Out    string `help:"Output directory" default:"." type:"existingdir"`
	Print  bool   `help:"Print the tree to stdout after building"`
}

// Run executes the build command.
func (cmd *BuildCmd) Run(ctx *Context) error {
	tree, err := buildTree(&cmd.treeInput)
	if err != nil {
		return err
	}
	ctx.Log.Info("tree built",
		"nodes", tree.CountElements(false),
		"values", tree.CountElements(true),
	)

	if cmd.Print {
		printTree(tree)
	}

	var writer Writer
	switch cmd.Format {
	case "csv":
		writer = &CsvWriter{}
	case "tsv":
		writer = &CsvWriter{isTSV: true}
	default:
		writer = &JsonWriter{}
	}
	return writer.Write(tree, cmd.Out, cmd.PathKey, cmd.ValueKey, cmd.Sep)
}

// CountCmd builds a tree from the input records and reports how many
// nodes it has, total and value-carrying.
type CountCmd struct {
	treeInput
}

// Run executes the count command.
func (cmd *CountCmd) Run(ctx *Context) error {
	tree, err := buildTree(&cmd.treeInput)
	if err != nil {
		return err
	}
	fmt.Printf("nodes: %d\nvalues: %d\n", tree.CountElements(false), tree.CountElements(true))
	return nil
}

// printTree dumps the tree in pre-order, one node per line, indented by
// depth. Holes are printed without a value so the structure stays
// readable.
func printTree(tree *keytree.Tree[string, string]) {
	tree.Walk(func(it *keytree.Iterator[string, string]) bool {
		node := it.Node()
		depth := node.Depth()
		if depth > 0 {
			depth--
		}
		indent := strings.Repeat("  ", depth)
		if it.HasValue() {
			fmt.Printf("%s%s = %s\n", indent, it.SubKey(), node.MustValue())
		} else {
			fmt.Printf("%s%s\n", indent, it.SubKey())
		}
		return true
	})
}
