package searcher

import (
	"slices"
	"wumpus/game"
)

// NodeID indexes a node in its search tree.
type NodeID int

const NoParent NodeID = -1

// Node is one step of a candidate path. Two nodes are the same state when
// they share a position; how they got there does not matter.
type Node struct {
	Position game.Position
	Parent   NodeID
	Action   game.Direction // move that led here, None for the root
	PathCost int
	Depth    int
}

func (n Node) Equal(other Node) bool {
	return n.Position == other.Position
}

func (n Node) IsGoal(goal game.Position) bool {
	return n.Position == goal
}

// tree stores every node generated by one search. Nodes refer to their parent
// by id so the whole tree is a single slice.
type tree struct {
	nodes []Node
}

func (t *tree) root(p game.Position) NodeID {
	t.nodes = append(t.nodes, Node{Position: p, Parent: NoParent, Action: game.None})
	return NodeID(len(t.nodes) - 1)
}

// child adds the node reached from parent by d. Every move costs one.
func (t *tree) child(parent NodeID, d game.Direction) NodeID {
	p := t.nodes[parent]
	t.nodes = append(t.nodes, Node{
		Position: p.Position.Step(d),
		Parent:   parent,
		Action:   d,
		PathCost: p.PathCost + 1,
		Depth:    p.Depth + 1,
	})
	return NodeID(len(t.nodes) - 1)
}

func (t *tree) get(id NodeID) Node {
	return t.nodes[id]
}

// plan walks from id back to the root and returns the moves in order.
func (t *tree) plan(id NodeID) Plan {
	n := t.nodes[id]
	plan := make(Plan, 0, n.Depth)
	for n.Parent != NoParent {
		plan = append(plan, n.Action)
		n = t.nodes[n.Parent]
	}
	slices.Reverse(plan)
	return plan
}
