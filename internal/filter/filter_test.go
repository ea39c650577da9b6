package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/models"
)

func sample() []models.Project {
	return []models.Project{
		{Title: "Quoridor 2D", Tech: []string{"Python", "Pygame"}},
		{Title: "Messagerie temps réel", Tech: []string{"Node.js", "React", "MongoDB"}},
		{Title: "Bot Discord", Tech: []string{"Node.js", "Discord.js"}},
		{Title: "Application mobile Kotlin", Tech: []string{"Kotlin", "Android Studio"}},
	}
}

func titles(list []models.Project) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Title
	}
	return out
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "all sentinel with empty search keeps everything in order",
			query: Query{Tag: All},
			want:  []string{"Quoridor 2D", "Messagerie temps réel", "Bot Discord", "Application mobile Kotlin"},
		},
		{
			name:  "zero query keeps everything",
			query: Query{},
			want:  []string{"Quoridor 2D", "Messagerie temps réel", "Bot Discord", "Application mobile Kotlin"},
		},
		{
			name:  "absent tag yields nothing",
			query: Query{Tag: "Rust"},
			want:  []string{},
		},
		{
			name:  "tag match is exact",
			query: Query{Tag: "node.js"},
			want:  []string{},
		},
		{
			name:  "tag filter preserves order",
			query: Query{Tag: "Node.js"},
			want:  []string{"Messagerie temps réel", "Bot Discord"},
		},
		{
			name:  "search matches title case-insensitively",
			query: Query{Search: "  DISCORD "},
			want:  []string{"Bot Discord"},
		},
		{
			name:  "search matches tag substring",
			query: Query{Search: "mongo"},
			want:  []string{"Messagerie temps réel"},
		},
		{
			name:  "tag and search combine",
			query: Query{Tag: "Node.js", Search: "react"},
			want:  []string{"Messagerie temps réel"},
		},
		{
			name:  "search with no match",
			query: Query{Tag: All, Search: "haskell"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := titles(Apply(sample(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	list := sample()
	q := Query{Tag: "Node.js", Search: "o"}
	once := Apply(list, q)
	twice := Apply(once, q)
	require.Equal(t, once, twice)
	require.Equal(t, once, Apply(list, q))
	require.Equal(t, sample(), list, "input must not be mutated")
}

func TestTags(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"Android Studio", "Discord.js", "Kotlin", "MongoDB", "Node.js", "Pygame", "Python", "React"},
		Tags(sample()),
	)
	require.Empty(t, Tags(nil))
}

func TestButtons(t *testing.T) {
	t.Parallel()

	buttons := Buttons(sample(), "")
	require.Equal(t, All, buttons[0].Tag)
	require.True(t, buttons[0].Active)

	buttons = Buttons(sample(), "Kotlin")
	require.False(t, buttons[0].Active)
	for _, b := range buttons[1:] {
		require.Equal(t, b.Tag == "Kotlin", b.Active)
	}
}
