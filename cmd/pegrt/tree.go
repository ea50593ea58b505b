package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hucsmn/pegrt"
)

// treeNode is the printable form of a result tree. Nil results become nil
// nodes; only leaves carry their text.
type treeNode struct {
	Begin    int         `json:"begin" yaml:"begin"`
	End      int         `json:"end" yaml:"end"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func newTreeNode(r *pegrt.Result, input []byte) *treeNode {
	if r == nil || r.IsNil() || r.IsFailed() {
		return nil
	}
	node := &treeNode{Begin: r.Begin(), End: r.End()}
	if r.IsLeaf() {
		node.Text = string(r.Text(input))
		return node
	}
	node.Children = make([]*treeNode, len(r.Children()))
	for i, child := range r.Children() {
		node.Children[i] = newTreeNode(child, input)
	}
	return node
}

func writeTree(w io.Writer, format string, tree *treeNode) error {
	switch format {
	case "text":
		var buf bytes.Buffer
		writeTreeText(&buf, tree, 0)
		_, err := w.Write(buf.Bytes())
		return err
	case "json":
		bs, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown format: %s", format)
	}
}

func writeTreeText(buf *bytes.Buffer, node *treeNode, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
	if node == nil {
		buf.WriteString("NIL\n")
		return
	}
	fmt.Fprintf(buf, "[%d,%d)", node.Begin, node.End)
	if node.Children == nil {
		fmt.Fprintf(buf, " %q", node.Text)
	}
	buf.WriteByte('\n')
	for _, child := range node.Children {
		writeTreeText(buf, child, depth+1)
	}
}

// writeDiagnostic prints the message of perr, then the input line it points
// at with a caret under the failing byte.
func writeDiagnostic(w io.Writer, name string, input []byte, perr *pegrt.ParseError) {
	fmt.Fprintf(w, "%s: %s\n", name, strings.TrimPrefix(perr.Error(), "pegrt: "))

	offset := perr.Pos.Offset
	start := bytes.LastIndexAny(input[:offset], "\r\n") + 1
	end := len(input)
	if i := bytes.IndexAny(input[offset:], "\r\n"); i >= 0 {
		end = offset + i
	}
	fmt.Fprintf(w, "  %s\n", input[start:end])
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", offset-start))
}

// readInput returns the contents of file, the arguments joined by spaces,
// or standard input, whichever is given first, along with a name for it.
func readInput(cmd *cobra.Command, file string, args []string) (string, []byte, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", nil, errors.Wrap(err, "read input")
		}
		return file, data, nil
	case len(args) > 0:
		return "<args>", []byte(strings.Join(args, " ")), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, errors.Wrap(err, "read stdin")
		}
		return "<stdin>", data, nil
	}
}
