package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"folio.dev/internal/models"
	"folio.dev/internal/slug"
)

func TestNewRoundTripsEverySlug(t *testing.T) {
	t.Parallel()

	list := Fallback()
	c, err := New(list)
	require.NoError(t, err)
	require.Equal(t, len(list), c.Len())

	for i, p := range list {
		got, pos, err := c.Lookup(slug.Generate(p.Title))
		require.NoError(t, err)
		require.Equal(t, i, pos)
		require.Equal(t, p.Title, got.Title)
	}
}

func TestNewRejectsDuplicateSlugs(t *testing.T) {
	t.Parallel()

	_, err := New([]models.Project{
		{Title: "Téléphone IoT"},
		{Title: "telephone iot"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateSlug))
	require.Contains(t, err.Error(), "telephone-iot")
}

func TestNewKeepsTitlesWithoutSlug(t *testing.T) {
	t.Parallel()

	c, err := New([]models.Project{
		{Title: "Bot Discord"},
		{Title: "日本語"},
		{Title: "!!!"},
		{Title: "Quoridor 2D"},
	})
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
	require.Equal(t, []string{"bot-discord", "quoridor-2d"}, c.Slugs())
	require.Len(t, c.Unlinked(), 2)
	require.Equal(t, "", c.Views()[1].Slug)

	_, _, err = c.Lookup("")
	require.ErrorIs(t, err, ErrNotFound)

	nav, err := c.Neighbors("bot-discord")
	require.NoError(t, err)
	require.Equal(t, "quoridor-2d", nav.Next.Slug)

	nav, err = c.Neighbors("quoridor-2d")
	require.NoError(t, err)
	require.Equal(t, "bot-discord", nav.Prev.Slug)
	require.Nil(t, nav.Next)
}

func TestNewEmptyList(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	require.NoError(t, err)
	require.Zero(t, c.Len())
	require.Empty(t, c.Views())
	require.Empty(t, c.Tags())
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	c, err := New(Fallback())
	require.NoError(t, err)

	_, pos, err := c.Lookup("does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, -1, pos)

	_, _, err = c.Lookup("")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	c, err := New([]models.Project{{Title: "Alpha"}, {Title: "Beta"}, {Title: "Gamma"}})
	require.NoError(t, err)

	nav, err := c.Neighbors("alpha")
	require.NoError(t, err)
	require.Nil(t, nav.Prev)
	require.Equal(t, "beta", nav.Next.Slug)

	nav, err = c.Neighbors("beta")
	require.NoError(t, err)
	require.Equal(t, "alpha", nav.Prev.Slug)
	require.Equal(t, "gamma", nav.Next.Slug)
	require.Equal(t, "Gamma", nav.Next.Title)

	nav, err = c.Neighbors("gamma")
	require.NoError(t, err)
	require.Equal(t, "beta", nav.Prev.Slug)
	require.Nil(t, nav.Next)

	_, err = c.Neighbors("delta")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProjectsIsACopy(t *testing.T) {
	t.Parallel()

	c, err := New([]models.Project{{Title: "Alpha"}})
	require.NoError(t, err)

	list := c.Projects()
	list[0].Title = "Mutated"
	got, _, err := c.Lookup("alpha")
	require.NoError(t, err)
	require.Equal(t, "Alpha", got.Title)
}

func TestHolder(t *testing.T) {
	t.Parallel()

	h := NewHolder(nil)
	require.Nil(t, h.Get())

	c, err := New([]models.Project{{Title: "Alpha"}})
	require.NoError(t, err)
	h.Set(c)
	require.Same(t, c, h.Get())
}
