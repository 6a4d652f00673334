package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/cinegraph/cinegraph/internal/browse"
	"github.com/cinegraph/cinegraph/internal/metrics"
)

// GraphStore executes browse traversals against the property graph.
type GraphStore struct {
	Base
}

// NewGraphStore creates a GraphStore.
func NewGraphStore(base Base) *GraphStore {
	return &GraphStore{Base: base}
}

// Browse builds the traversal query for the canonical filter set, executes
// it, and assembles the streamed edge records into a deduplicated graph.
// The result stream is consumed exactly once, in arrival order; closing the
// session releases the cursor even when ctx is cancelled mid-stream.
func (s *GraphStore) Browse(ctx context.Context, filters browse.Filters) (*browse.Result, error) {
	q := browse.BuildQuery(filters)

	session := s.DB.ReadSession(ctx)
	defer session.Close(ctx) //nolint:errcheck // read-only session.

	result, err := session.Run(ctx, q.Text, q.Params)
	if err != nil {
		return nil, fmt.Errorf("executing browse query: %w", err)
	}

	res, err := browse.Assemble(ctx, &tripleStream{result: result})
	if err != nil {
		return nil, fmt.Errorf("assembling browse result: %w", err)
	}

	metrics.BrowseLinks.Add(float64(len(res.Links)))
	metrics.BrowseNodes.Add(float64(len(res.Nodes)))

	return res, nil
}

// tripleStream adapts a driver result cursor to the browse.TripleStream
// consumed by the assembler. It is finite and not restartable.
type tripleStream struct {
	result neo4j.ResultWithContext
}

func (s *tripleStream) Next(ctx context.Context) (browse.Triple, bool, error) {
	if !s.result.Next(ctx) {
		if err := s.result.Err(); err != nil {
			return browse.Triple{}, false, fmt.Errorf("streaming browse records: %w", err)
		}

		return browse.Triple{}, false, nil
	}

	record := s.result.Record()

	source, err := nodeSnapshot(record, "s")
	if err != nil {
		return browse.Triple{}, false, err
	}

	target, err := nodeSnapshot(record, "t")
	if err != nil {
		return browse.Triple{}, false, err
	}

	relValue, _ := record.Get("rel")
	rel, ok := relValue.(string)
	if !ok {
		return browse.Triple{}, false, fmt.Errorf("record field %q is not a relationship type: %T", "rel", relValue)
	}

	return browse.Triple{Source: source, Target: target, Rel: rel}, true, nil
}

// nodeSnapshot extracts one endpoint node from a record field.
func nodeSnapshot(record *neo4j.Record, key string) (browse.Snapshot, error) {
	v, _ := record.Get(key)

	node, ok := v.(neo4j.Node)
	if !ok {
		return browse.Snapshot{}, fmt.Errorf("record field %q is not a node: %T", key, v)
	}

	return browse.Snapshot{
		ID:     node.ElementId,
		Labels: node.Labels,
		Props:  node.Props,
	}, nil
}
