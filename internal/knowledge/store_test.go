package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/tree"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func sampleTree() tree.Node {
	return &tree.Question{
		Text: "¿Es un jefe?",
		Yes:  &tree.Guess{Name: "Hornet"},
		No:   &tree.Guess{Name: "Cornifer"},
	}
}

func TestLoadTreeBootstrapsDefault(t *testing.T) {
	st := openTestStore(t)

	root, err := st.LoadTree()
	require.NoError(t, err)
	assert.True(t, tree.Equal(root, tree.Default()), "first load should return the default tree")

	// The bootstrap is persisted, not just returned.
	_, err = os.Stat(st.TreePath())
	require.NoError(t, err)

	again, err := st.LoadTree()
	require.NoError(t, err)
	assert.True(t, tree.Equal(again, root))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)

	want := sampleTree()
	require.NoError(t, st.SaveTree(want))

	got, err := st.LoadTree()
	require.NoError(t, err)
	assert.True(t, tree.Equal(got, want))
}

func TestLoadTreeCorrupt(t *testing.T) {
	st := openTestStore(t)

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"wrong shape", `{"neither": true}`},
		{"truncated question", `{"q": "¿A?", "yes": {"guess": "X"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(st.TreePath(), []byte(tt.content), 0o644))

			_, err := st.LoadTree()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptData, "corrupt file must not be silently replaced")
		})
	}
}

func TestSaveTreeLeavesNoTempFiles(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveTree(sampleTree()))

	entries, err := os.ReadDir(st.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "temp file left behind")
	}
}

func TestStatsLifecycle(t *testing.T) {
	st := openTestStore(t)

	stats, err := st.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, game.Stats{}, stats, "missing stats file should yield zeros")

	stats.RecordWin()
	stats.RecordLearn()
	require.NoError(t, st.SaveStats(stats))

	got, err := st.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestLoadStatsCorrupt(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, os.WriteFile(st.StatsPath(), []byte("{{"), 0o644))

	_, err := st.LoadStats()
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestLoadStatsNegativeCounter(t *testing.T) {
	st := openTestStore(t)
	doc := []byte(`{"played": 3, "wins": -1, "learned": 0}`)
	require.NoError(t, os.WriteFile(st.StatsPath(), doc, 0o644))

	_, err := st.LoadStats()
	assert.ErrorIs(t, err, ErrCorruptData, "counters are non-negative")
}

func TestImportTree(t *testing.T) {
	st := openTestStore(t)

	doc := []byte(`{"q": "¿Es un jefe?", "yes": {"guess": "Hornet"}, "no": {"guess": "Cornifer"}}`)
	root, err := st.ImportTree(doc)
	require.NoError(t, err)
	assert.True(t, tree.Equal(root, sampleTree()))

	// Import persists the new tree.
	loaded, err := st.LoadTree()
	require.NoError(t, err)
	assert.True(t, tree.Equal(loaded, sampleTree()))
}

func TestImportTreeInvalid(t *testing.T) {
	st := openTestStore(t)

	// Persist a known tree first; a failed import must leave it alone.
	require.NoError(t, st.SaveTree(sampleTree()))

	tests := []struct {
		name string
		doc  string
	}{
		{"no q or guess at root", `{"title": "not a tree"}`},
		{"not json", `]]`},
		{"missing branch", `{"q": "¿A?", "yes": {"guess": "X"}}`},
		{"extra keys", `{"guess": "X", "color": "red"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.ImportTree([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)

			kept, err := st.LoadTree()
			require.NoError(t, err)
			assert.True(t, tree.Equal(kept, sampleTree()), "failed import replaced the active tree")
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	st := openTestStore(t)

	dest := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, st.ExportTree(sampleTree(), dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	root, err := st.ImportTree(data)
	require.NoError(t, err)
	assert.True(t, tree.Equal(root, sampleTree()))
}

func TestReset(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveTree(sampleTree()))

	root, err := st.Reset()
	require.NoError(t, err)
	assert.True(t, tree.Equal(root, tree.Default()))

	loaded, err := st.LoadTree()
	require.NoError(t, err)
	assert.True(t, tree.Equal(loaded, tree.Default()))
}
