package browse

// Snapshot is the raw per-endpoint node data as returned by the store: the
// backend-assigned identifier, the label set, and the full property map.
type Snapshot struct {
	ID     string
	Labels []string
	Props  map[string]any
}

// identity derives the deduplication key, primary label, and display title
// for a snapshot. The dispatch is an ordered match: movies key on their
// title, people on their name, and anything else on the backend id. A node
// carrying the marker label but missing the natural attribute falls back to
// "#<id>", so every node always has a usable display title.
//
// The key is a pure function of (labels, props, id) and is only meaningful
// within a single request.
func identity(s Snapshot) (key, label, title string) {
	switch {
	case hasLabel(s.Labels, "Movie"):
		title = stringProp(s.Props, "title", s.ID)

		return "movie::" + title, "movie", title
	case hasLabel(s.Labels, "Person"):
		name := stringProp(s.Props, "name", s.ID)

		return "person::" + name, "person", name
	default:
		return "node::" + s.ID, "node", "#" + s.ID
	}
}

func hasLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}

	return false
}

// stringProp returns the named string property, or "#<id>" when it is absent
// or not a string.
func stringProp(props map[string]any, name, id string) string {
	if v, ok := props[name].(string); ok {
		return v
	}

	return "#" + id
}
