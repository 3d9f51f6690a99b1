// Package scriptgraph builds the directed graph of how SmartAI rows cause
// one another to run: explicit links, implicit timed action list ordering,
// action list invocations and SET_DATA to DATA_SET triggers.
package scriptgraph

import (
	"sort"

	"github.com/AaronLay10/SaiScope/internal/smartai"
)

// EdgeKind is the reason one row leads to another.
type EdgeKind string

const (
	EdgeChain       EdgeKind = "chain"
	EdgeImplicit    EdgeKind = "implicit"
	EdgeInvoke      EdgeKind = "invoke"
	EdgeDataTrigger EdgeKind = "dataTrigger"
)

// Edge is an outgoing connection of a node.
type Edge struct {
	Kind EdgeKind `json:"kind"`
	// To is the target node index, or -1 when the target row does not exist.
	To     int            `json:"to"`
	Target smartai.RowKey `json:"target"`
	// Param carries the action list id of invoke edges and the data field
	// of dataTrigger edges.
	Param int64 `json:"param,omitempty"`
}

// Broken reports whether the edge points at a missing row.
func (e Edge) Broken() bool {
	return e.To < 0
}

// Node is one script row in the graph.
type Node struct {
	Index int               `json:"index"`
	Row   smartai.ScriptRow `json:"row"`
	Edges []Edge            `json:"edges,omitempty"`
}

// Key returns the identity of the node's row.
func (n Node) Key() smartai.RowKey {
	return n.Row.Key()
}

// AnomalyKind classifies a structural problem found while building.
type AnomalyKind string

const (
	AnomalyBrokenLink        AnomalyKind = "broken_link"
	AnomalyUnresolvedInvoke  AnomalyKind = "unresolved_invoke"
	AnomalyUnresolvedTrigger AnomalyKind = "unresolved_trigger"
	AnomalyDuplicateID       AnomalyKind = "duplicate_id"
)

// Anomaly is a structural problem. Anomalies are reported as data and never
// stop a build.
type Anomaly struct {
	Kind    AnomalyKind    `json:"kind"`
	Row     smartai.RowKey `json:"row"`
	Target  smartai.RowKey `json:"target"`
	Param   int64          `json:"param,omitempty"`
	Message string         `json:"message"`
}

// Graph is an arena of nodes addressed by index. Nodes are never removed,
// so an index stays valid for the life of the graph.
type Graph struct {
	Root      smartai.GroupKey `json:"root"`
	DataScope DataScope        `json:"data_scope"`
	Nodes     []Node           `json:"nodes"`
	Anomalies []Anomaly        `json:"anomalies,omitempty"`

	index map[smartai.RowKey]int
}

func newGraph(root smartai.GroupKey, scope DataScope) *Graph {
	return &Graph{
		Root:      root,
		DataScope: scope,
		index:     make(map[smartai.RowKey]int),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Lookup returns the node index of key.
func (g *Graph) Lookup(key smartai.RowKey) (int, bool) {
	i, ok := g.index[key]
	return i, ok
}

// Node returns the node for key.
func (g *Graph) Node(key smartai.RowKey) (Node, bool) {
	i, ok := g.index[key]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Groups returns every group with nodes in the graph, sorted.
func (g *Graph) Groups() []smartai.GroupKey {
	seen := make(map[smartai.GroupKey]bool)
	var out []smartai.GroupKey
	for _, n := range g.Nodes {
		k := n.Row.Group()
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// AnomaliesFor returns the anomalies recorded against row.
func (g *Graph) AnomaliesFor(row smartai.RowKey) []Anomaly {
	var out []Anomaly
	for _, a := range g.Anomalies {
		if a.Row == row {
			out = append(out, a)
		}
	}
	return out
}

func (g *Graph) add(row smartai.ScriptRow) int {
	i := len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{Index: i, Row: row})
	g.index[row.Key()] = i
	return i
}

func (g *Graph) anomaly(a Anomaly) {
	g.Anomalies = append(g.Anomalies, a)
}
