package scores_test

import (
	"path/filepath"
	"testing"

	"github.com/plus3/chomp/game"
	"github.com/plus3/chomp/level"
	"github.com/plus3/chomp/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *scores.DB {
	t.Helper()
	db, err := scores.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTopOrdering(t *testing.T) {
	db := openDB(t)

	runs := []scores.Entry{
		{Player: "a", Level: "classic", Score: 40, Total: 171, Outcome: "captured", Frames: 900},
		{Player: "b", Level: "classic", Score: 171, Total: 171, Outcome: "won", Frames: 5000},
		{Player: "c", Level: "classic", Score: 40, Total: 171, Outcome: "captured", Frames: 700},
		{Player: "d", Level: "tiny", Score: 1, Total: 1, Outcome: "won", Frames: 10},
	}
	for _, r := range runs {
		_, err := db.Record(r)
		require.NoError(t, err)
	}

	top, err := db.Top("classic", 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{top[0].Player, top[1].Player, top[2].Player})
	assert.Equal(t, uint64(700), top[1].Frames)
	assert.False(t, top[0].CreatedAt.IsZero())

	top, err = db.Top("classic", 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestBestOnEmptyLevel(t *testing.T) {
	db := openDB(t)
	best, err := db.Best("nowhere")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestRecordFromSession(t *testing.T) {
	db := openDB(t)

	g := game.New(level.Classic())
	g.Session().Player.Pos = level.Point{X: 455, Y: 30}
	g.AdvanceFrame(nil)
	require.Equal(t, game.Captured, g.State())

	id, err := db.Record(scores.FromSession("tester", g.Session(), g.Tick()))
	require.NoError(t, err)
	assert.Positive(t, id)

	best, err := db.Best("classic")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "captured", best.Outcome)
	assert.Equal(t, 171, best.Total)
	assert.Equal(t, uint64(1), best.Frames)

	counts, err := db.Count("classic")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"captured": 1}, counts)
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	db, err := scores.Open(path)
	require.NoError(t, err)
	_, err = db.Record(scores.Entry{Level: "classic", Score: 3, Outcome: "won"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = scores.Open(path)
	require.NoError(t, err)
	defer db.Close()

	best, err := db.Best("classic")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 3, best.Score)
}
