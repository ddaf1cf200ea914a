package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justcode/internal/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	sess := &session.Session{
		Workspace: "/home/dev/project",
		Tabs: []session.Tab{
			{Path: "/home/dev/project/main.steps", CursorRow: 12, CursorCol: 4},
			{Path: "/home/dev/project/util.steps", CursorRow: 0, CursorCol: 0},
		},
		ActiveTab: 1,
	}
	require.NoError(t, store.Save(sess))
	assert.NotEmpty(t, sess.ID, "save assigns an id")

	loaded, err := store.Load("/home/dev/project")
	require.NoError(t, err)

	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, sess.Tabs, loaded.Tabs)
	assert.Equal(t, 1, loaded.ActiveTab)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("/nowhere")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStore_SaveReplacesTabs(t *testing.T) {
	store := newTestStore(t)

	first := &session.Session{
		Workspace: "/ws",
		Tabs: []session.Tab{
			{Path: "/ws/a.steps"},
			{Path: "/ws/b.steps"},
			{Path: "/ws/c.steps"},
		},
		ActiveTab: 2,
	}
	require.NoError(t, store.Save(first))

	second := &session.Session{
		Workspace: "/ws",
		Tabs:      []session.Tab{{Path: "/ws/b.steps", CursorRow: 3}},
		ActiveTab: 0,
	}
	require.NoError(t, store.Save(second))
	assert.Equal(t, first.ID, second.ID, "workspace keeps its session id")

	loaded, err := store.Load("/ws")
	require.NoError(t, err)
	assert.Equal(t, second.Tabs, loaded.Tabs)
	assert.Equal(t, 0, loaded.ActiveTab)
}

func TestStore_SaveEmptyWorkspace(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(&session.Session{})
	assert.Error(t, err)
}

func TestStore_SaveNoTabs(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&session.Session{Workspace: "/empty"}))

	loaded, err := store.Load("/empty")
	require.NoError(t, err)
	assert.Empty(t, loaded.Tabs)
	assert.Equal(t, 0, loaded.ActiveTab)
}

func TestStore_LoadClampsActiveTab(t *testing.T) {
	store := newTestStore(t)

	// An active index past the tab list can survive a stale save.
	require.NoError(t, store.Save(&session.Session{
		Workspace: "/clamp",
		Tabs:      []session.Tab{{Path: "/clamp/only.steps"}},
		ActiveTab: 5,
	}))

	loaded, err := store.Load("/clamp")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.ActiveTab)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&session.Session{
		Workspace: "/gone",
		Tabs:      []session.Tab{{Path: "/gone/x.steps"}},
	}))

	require.NoError(t, store.Delete("/gone"))
	_, err := store.Load("/gone")
	assert.ErrorIs(t, err, session.ErrNotFound)

	assert.ErrorIs(t, store.Delete("/gone"), session.ErrNotFound)
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := session.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(&session.Session{
		Workspace: "/durable",
		Tabs:      []session.Tab{{Path: "/durable/main.steps", CursorRow: 7}},
	}))
	require.NoError(t, store.Close())

	reopened, err := session.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	loaded, err := reopened.Load("/durable")
	require.NoError(t, err)
	require.Len(t, loaded.Tabs, 1)
	assert.Equal(t, 7, loaded.Tabs[0].CursorRow)
}
