package browse

import "testing"

func TestIdentity_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		snap      Snapshot
		wantKey   string
		wantLabel string
		wantTitle string
	}{
		{
			name:      "movie with title",
			snap:      Snapshot{ID: "1", Labels: []string{"Movie"}, Props: map[string]any{"title": "The Matrix"}},
			wantKey:   "movie::The Matrix",
			wantLabel: "movie",
			wantTitle: "The Matrix",
		},
		{
			name:      "movie without title falls back to id",
			snap:      Snapshot{ID: "42", Labels: []string{"Movie"}, Props: map[string]any{}},
			wantKey:   "movie::#42",
			wantLabel: "movie",
			wantTitle: "#42",
		},
		{
			name:      "person with name",
			snap:      Snapshot{ID: "2", Labels: []string{"Person"}, Props: map[string]any{"name": "Keanu Reeves"}},
			wantKey:   "person::Keanu Reeves",
			wantLabel: "person",
			wantTitle: "Keanu Reeves",
		},
		{
			name:      "person without name falls back to id",
			snap:      Snapshot{ID: "7", Labels: []string{"Person"}, Props: nil},
			wantKey:   "person::#7",
			wantLabel: "person",
			wantTitle: "#7",
		},
		{
			name:      "unlabelled node keys on id",
			snap:      Snapshot{ID: "9", Labels: []string{"Genre"}, Props: map[string]any{"title": "Action"}},
			wantKey:   "node::9",
			wantLabel: "node",
			wantTitle: "#9",
		},
		{
			name:      "movie label wins over person",
			snap:      Snapshot{ID: "3", Labels: []string{"Person", "Movie"}, Props: map[string]any{"title": "Self", "name": "Self"}},
			wantKey:   "movie::Self",
			wantLabel: "movie",
			wantTitle: "Self",
		},
		{
			name:      "non-string title is ignored",
			snap:      Snapshot{ID: "5", Labels: []string{"Movie"}, Props: map[string]any{"title": int64(1999)}},
			wantKey:   "movie::#5",
			wantLabel: "movie",
			wantTitle: "#5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, label, title := identity(tt.snap)

			if key != tt.wantKey {
				t.Errorf("expected key %q, got %q", tt.wantKey, key)
			}

			if label != tt.wantLabel {
				t.Errorf("expected label %q, got %q", tt.wantLabel, label)
			}

			if title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, title)
			}
		})
	}
}
