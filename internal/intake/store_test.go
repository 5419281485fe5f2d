package intake

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	store, err := Open(context.Background(), t.TempDir(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleForm() inquiry.FormData {
	return inquiry.FormData{
		Name:        "Ana",
		Email:       "ana@x.com",
		ProjectType: "web",
		Budget:      "growth",
		Message:     "Necesito un sitio",
	}
}

func TestStore_SaveAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := store.Save(ctx, sampleForm())
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second := sampleForm()
	second.Name = "Luis"
	second.ProjectType = "ecommerce"
	require.NoError(t, store.Submit(ctx, second))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, sampleForm(), list[0].FormData)
	require.Equal(t, "Luis", list[1].Name)
	require.True(t, list[0].CreatedAt.Before(list[1].CreatedAt))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)
}

func TestStore_ListEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t)

	data := sampleForm()
	data.Email = ""
	_, err := store.Save(ctx, data)
	require.True(t, inquiry.IsValidationError(err))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestStore_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.js.Publish(ctx, subjectFor("web"), []byte("{not json"))
	require.NoError(t, err)
	_, err = store.Save(ctx, sampleForm())
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Ana", list[0].Name)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, dir)
	require.NoError(t, err)
	saved, err := store.Save(ctx, sampleForm())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, dir)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, saved.ID, list[0].ID)
}

func TestStore_ExportsWhenConfigured(t *testing.T) {
	t.Parallel()

	exportDir := filepath.Join(t.TempDir(), "export")
	store := openTestStore(t, WithExporter(NewExporter(exportDir)))

	saved, err := store.Save(context.Background(), sampleForm())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(exportDir, "ana-"+saved.ID[:8]+".md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(exportDir, "README.md"))
	require.NoError(t, err)
}

func TestSubjectFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "contacto.inquiries.redesign", subjectFor("redesign"))
}
