package browse

// Mode discriminates the two traversal strategies. It is chosen once at
// query-build time and never revisited.
type Mode int

const (
	// ModeUnbounded enumerates every directed edge satisfying the filters.
	ModeUnbounded Mode = iota

	// ModeRootedWalk enumerates relationship instances on undirected paths
	// of 1..depth hops from a resolved root node.
	ModeRootedWalk
)

// String returns the mode name for logging.
func (m Mode) String() string {
	if m == ModeRootedWalk {
		return "rooted_walk"
	}

	return "unbounded"
}

// Mode selects the traversal strategy: a rooted walk requires both a root
// anchor and a depth of at least one hop. A depth supplied without a root
// (or a root with depth 0) still yields the unbounded scan.
func (f Filters) Mode() Mode {
	if f.Root != "" && f.Depth >= 1 {
		return ModeRootedWalk
	}

	return ModeUnbounded
}

// The two traversal templates. Every variable is a bound parameter; the
// query text itself is fixed. Empty collection parameters disable the
// matching predicate (size($x) = 0), preserving wildcard semantics without
// branching the template. Year bounds apply only to Movie endpoints: a node
// without a released property always passes both bounds.
//
// Root resolution matches a movie by title, a person by name, or a generic
// node by its title property; when a movie and a person share the literal
// root string the backend picks one in its own order.
const (
	unboundedQuery = `
		MATCH (s)-[r]->(t)
		WHERE (size($rels) = 0 OR type(r) IN $rels)
		  AND (size($node_incl) = 0 OR any(lbl IN labels(s) WHERE lbl IN $node_incl))
		  AND (size($node_incl) = 0 OR any(lbl IN labels(t) WHERE lbl IN $node_incl))
		  AND (size($node_excl) = 0 OR all(lbl IN labels(s) WHERE NOT lbl IN $node_excl))
		  AND (size($node_excl) = 0 OR all(lbl IN labels(t) WHERE NOT lbl IN $node_excl))
		  AND ($released_gte IS NULL OR CASE WHEN s:Movie THEN coalesce(s.released,-1) >= $released_gte ELSE true END)
		  AND ($released_gte IS NULL OR CASE WHEN t:Movie THEN coalesce(t.released,-1) >= $released_gte ELSE true END)
		  AND ($released_lte IS NULL OR CASE WHEN s:Movie THEN coalesce(s.released,999999) <= $released_lte ELSE true END)
		  AND ($released_lte IS NULL OR CASE WHEN t:Movie THEN coalesce(t.released,999999) <= $released_lte ELSE true END)
		RETURN s, t, type(r) AS rel
		LIMIT $limit`

	rootedQuery = `
		MATCH (root)
		WHERE (root:Movie AND root.title = $root)
		   OR (root:Person AND root.name  = $root)
		   OR (root:node {title:$root})
		MATCH p = (root)-[r*1..$depth]-(n)
		UNWIND relationships(p) AS relx
		WITH DISTINCT startNode(relx) AS s, endNode(relx) AS t, type(relx) AS rel
		WHERE (size($rels) = 0 OR rel IN $rels)
		  AND (size($node_incl) = 0 OR any(lbl IN labels(s) WHERE lbl IN $node_incl))
		  AND (size($node_incl) = 0 OR any(lbl IN labels(t) WHERE lbl IN $node_incl))
		  AND (size($node_excl) = 0 OR all(lbl IN labels(s) WHERE NOT lbl IN $node_excl))
		  AND (size($node_excl) = 0 OR all(lbl IN labels(t) WHERE NOT lbl IN $node_excl))
		  AND ($released_gte IS NULL OR CASE WHEN s:Movie THEN coalesce(s.released,-1) >= $released_gte ELSE true END)
		  AND ($released_gte IS NULL OR CASE WHEN t:Movie THEN coalesce(t.released,-1) >= $released_gte ELSE true END)
		  AND ($released_lte IS NULL OR CASE WHEN s:Movie THEN coalesce(s.released,999999) <= $released_lte ELSE true END)
		  AND ($released_lte IS NULL OR CASE WHEN t:Movie THEN coalesce(t.released,999999) <= $released_lte ELSE true END)
		RETURN s, t, rel
		LIMIT $limit`
)

// Query is a fully parameterized traversal request for the graph store.
type Query struct {
	Text   string
	Params map[string]any
}

// BuildQuery renders the traversal query for a canonical filter set. The text
// is always exactly one of the two fixed templates, selected by Mode; nothing
// is ever string-interpolated into it.
func BuildQuery(f Filters) Query {
	text := unboundedQuery
	depth := 1

	if f.Mode() == ModeRootedWalk {
		text = rootedQuery
		depth = f.Depth
	}

	return Query{
		Text: text,
		Params: map[string]any{
			"root":         f.Root,
			"depth":        depth,
			"rels":         f.Rels,
			"node_incl":    f.NodeInclude,
			"node_excl":    f.NodeExclude,
			"released_gte": int64OrNil(f.ReleasedGTE),
			"released_lte": int64OrNil(f.ReleasedLTE),
			"limit":        f.Limit,
		},
	}
}

// int64OrNil dereferences an optional bound so the driver binds a true null
// rather than a typed nil pointer.
func int64OrNil(p *int64) any {
	if p == nil {
		return nil
	}

	return *p
}
