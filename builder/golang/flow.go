package golang

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"strconv"

	"github.com/viant/patmatch/matcher/graph"
	"golang.org/x/tools/go/cfg"
)

// FlowBuilder lowers a function's control flow into a labeled directed
// multigraph: one node per statement or condition, flow edges between
// consecutive statements, operand edges from variables to the statements
// consuming them. The same variable read twice by one statement yields two
// parallel operand edges.
type FlowBuilder struct{}

// NewFlowBuilder creates a new FlowBuilder
func NewFlowBuilder() *FlowBuilder {
	return &FlowBuilder{}
}

// BuildFunc parses Go source code and builds the flow graph of the named function
func (b *FlowBuilder) BuildFunc(src []byte, funcName string) (*graph.Graph, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	var target *ast.FuncDecl
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == funcName {
			target = fn
			break
		}
	}
	if target == nil || target.Body == nil {
		return nil, fmt.Errorf("function %s not found", funcName)
	}
	return b.lower(fset, cfg.New(target.Body, func(*ast.CallExpr) bool { return true })), nil
}

// BuildFile parses a Go source file and builds the flow graph of the named function
func (b *FlowBuilder) BuildFile(filename, funcName string) (*graph.Graph, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return b.BuildFunc(src, funcName)
}

// lower converts the control-flow blocks into graph nodes and edges
func (b *FlowBuilder) lower(fset *token.FileSet, flow *cfg.CFG) *graph.Graph {
	result := graph.NewGraph()
	ids := map[ast.Node]string{}
	variables := map[string]string{}
	counter := 0

	for _, block := range flow.Blocks {
		if !block.Live {
			continue
		}
		for _, node := range block.Nodes {
			id := "s" + strconv.Itoa(counter)
			counter++
			ids[node] = id
			result.AddNode(&graph.Node{ID: id, Label: nodeLabel(node), OriginalLabel: render(fset, node)})
			b.addOperands(result, variables, node, id)
		}
	}
	for _, block := range flow.Blocks {
		if !block.Live {
			continue
		}
		for i := 0; i+1 < len(block.Nodes); i++ {
			result.AddEdge(ids[block.Nodes[i]], ids[block.Nodes[i+1]], "flow")
		}
		if len(block.Nodes) == 0 {
			continue
		}
		last := ids[block.Nodes[len(block.Nodes)-1]]
		for _, succ := range block.Succs {
			for _, entry := range entryNodes(succ, map[*cfg.Block]bool{}) {
				result.AddEdge(last, ids[entry], "flow")
			}
		}
	}
	return result
}

// entryNodes returns the first statements reachable through a successor block,
// skipping over empty synthetic blocks
func entryNodes(block *cfg.Block, visited map[*cfg.Block]bool) []ast.Node {
	if visited[block] {
		return nil
	}
	visited[block] = true
	if len(block.Nodes) > 0 {
		return block.Nodes[:1]
	}
	var result []ast.Node
	for _, succ := range block.Succs {
		result = append(result, entryNodes(succ, visited)...)
	}
	return result
}

// addOperands links every variable occurrence within the statement to its node
func (b *FlowBuilder) addOperands(result *graph.Graph, variables map[string]string, node ast.Node, id string) {
	ast.Inspect(node, func(child ast.Node) bool {
		if selector, ok := child.(*ast.SelectorExpr); ok {
			// only the receiver side of a selector names a variable
			b.addOperands(result, variables, selector.X, id)
			return false
		}
		ident, ok := child.(*ast.Ident)
		if !ok || ident.Name == "_" {
			return true
		}
		switch ident.Name {
		case "true", "false", "nil":
			return true
		}
		variableID, ok := variables[ident.Name]
		if !ok {
			variableID = "v" + strconv.Itoa(len(variables))
			variables[ident.Name] = variableID
			result.AddNode(&graph.Node{ID: variableID, Label: "var", OriginalLabel: ident.Name})
		}
		result.AddEdge(variableID, id, "operand")
		return true
	})
}

// nodeLabel assigns the syntactic category of a control-flow node
func nodeLabel(node ast.Node) string {
	switch actual := node.(type) {
	case *ast.AssignStmt:
		return "assign"
	case *ast.ReturnStmt:
		return "return"
	case *ast.IncDecStmt:
		return "incdec"
	case *ast.DeclStmt:
		return "decl"
	case *ast.ExprStmt:
		if _, ok := actual.X.(*ast.CallExpr); ok {
			return "call"
		}
		return "expr"
	case ast.Expr:
		// block-terminating conditions surface as bare expressions
		return "cond"
	default:
		return "stmt"
	}
}

// render prints the node's source text
func render(fset *token.FileSet, node ast.Node) string {
	buffer := &bytes.Buffer{}
	if err := printer.Fprint(buffer, fset, node); err != nil {
		return ""
	}
	return buffer.String()
}
