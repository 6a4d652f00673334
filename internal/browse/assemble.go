package browse

import "context"

// Triple is one edge record from the store: both endpoint snapshots plus the
// relationship type name.
type Triple struct {
	Source Snapshot
	Target Snapshot
	Rel    string
}

// TripleStream is a finite, non-restartable sequence of edge records,
// consumed synchronously and exactly once. Next returns ok=false when the
// stream is exhausted; a non-nil error means the store failed mid-stream.
type TripleStream interface {
	Next(ctx context.Context) (t Triple, ok bool, err error)
}

// Node is a deduplicated graph vertex, addressed by its position in the
// node list.
type Node struct {
	Title string         `json:"title"`
	Label string         `json:"label"`
	Props map[string]any `json:"props"`
}

// Link connects two nodes by index. Repeated relationship instances between
// the same pair produce repeated links; only nodes are deduplicated.
type Link struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Rel    string `json:"rel"`
}

// Result is the assembled browse response. Node order is first-seen order,
// which is a function of arrival order only.
type Result struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Assemble consumes the triple stream sequentially, in arrival order, and
// reduces it into a deduplicated, index-addressed graph. Index assignment is
// order-dependent, so triples must not be processed out of order. If ctx is
// cancelled the whole operation is abandoned: no partial result is returned.
func Assemble(ctx context.Context, stream TripleStream) (*Result, error) {
	index := make(map[string]int)
	res := &Result{
		Nodes: make([]Node, 0, 16),
		Links: make([]Link, 0, 16),
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, ok, err := stream.Next(ctx)
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		src := res.intern(index, t.Source)
		tgt := res.intern(index, t.Target)
		res.Links = append(res.Links, Link{Source: src, Target: tgt, Rel: t.Rel})
	}

	return res, nil
}

// intern resolves a snapshot to its node index, appending a new node on
// first sighting of its identity key.
func (r *Result) intern(index map[string]int, s Snapshot) int {
	key, label, title := identity(s)

	if idx, seen := index[key]; seen {
		return idx
	}

	idx := len(r.Nodes)
	index[key] = idx
	r.Nodes = append(r.Nodes, Node{Title: title, Label: label, Props: s.Props})

	return idx
}
