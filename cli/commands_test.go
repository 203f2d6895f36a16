package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"wardrobeapi/app"
	"wardrobeapi/config"
	"wardrobeapi/models"
	"wardrobeapi/store"
	"wardrobeapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	kv    *store.MemoryKV
	llm   *test.LLMMock
	store *store.Store
}

func newTestEnv(replies ...string) *testEnv {
	kv := store.NewMemoryKV()
	return &testEnv{kv: kv, llm: test.NewLLMMock(replies...), store: store.New(kv)}
}

func (env *testEnv) factory(ctx context.Context) (*app.App, error) {
	return app.Assemble(&config.Config{StoreDriver: "memory"}, env.llm, env.kv), nil
}

func (env *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(env.factory)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAddClassifiesFiles(t *testing.T) {
	env := newTestEnv(test.ClassificationReply(2, "linen shirt", "jeans"))
	dir := t.TempDir()
	first := writeFile(t, dir, "shirt.png", pngHeader)
	second := writeFile(t, dir, "jeans.jpg", jpegHeader)

	out, err := env.run(t, "add", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 item(s)")
	assert.Contains(t, out, "linen shirt")

	items, err := env.store.GetCloset(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.CategoryTop, items[0].Category)
	assert.Equal(t, models.CategoryBottom, items[1].Category)
	assert.Contains(t, items[0].ImageDataURL, "data:image/png;base64,")

	requests := env.llm.Requests()
	require.Len(t, requests, 1)
	assert.Len(t, requests[0].Images, 2)
}

func TestAddRejectsNonImageBeforeCallingModel(t *testing.T) {
	env := newTestEnv(test.ClassificationReply(1))
	path := writeFile(t, t.TempDir(), "notes.txt", []byte("just text"))

	_, err := env.run(t, "add", path)
	require.Error(t, err)
	assert.Equal(t, 0, env.llm.Calls())
}

func TestListGroupsByCategory(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.store.SaveCloset(context.Background(), test.FakeWardrobe(3)))

	out, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 item(s)")
	assert.Contains(t, out, "outerwear (1)")
	assert.Contains(t, out, "top (1)")
	assert.Contains(t, out, "bottom (1)")
	assert.Less(t, bytes.Index([]byte(out), []byte("outerwear")), bytes.Index([]byte(out), []byte("bottom (1)")))
}

func TestListEmptyCloset(t *testing.T) {
	out, err := newTestEnv().run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "The closet is empty")
}

func TestRecategorizeAndRemove(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.store.SaveCloset(context.Background(), test.FakeWardrobe(2)))

	out, err := env.run(t, "recategorize", "item_1700000000000_1", "shoes")
	require.NoError(t, err)
	assert.Contains(t, out, "item_1700000000000_1 is now shoes")

	_, err = env.run(t, "recategorize", "item_1700000000000_1", "hats")
	require.Error(t, err)

	_, err = env.run(t, "remove", "item_1700000000000_0")
	require.NoError(t, err)
	_, err = env.run(t, "remove", "missing")
	require.Error(t, err)

	items, err := env.store.GetCloset(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.CategoryShoes, items[0].Category)
}

func TestClearNeedsConfirmation(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.store.SaveCloset(context.Background(), test.FakeWardrobe(2)))

	_, err := env.run(t, "clear")
	require.Error(t, err)
	items, err := env.store.GetCloset(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = env.run(t, "clear", "--yes")
	require.NoError(t, err)
	items, err = env.store.GetCloset(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPlanWithoutEnoughItems(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.store.SaveCloset(context.Background(), test.FakeWardrobe(3)))

	out, err := env.run(t, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "No plan yet")
	assert.Contains(t, out, "closet has 3")

	_, err = env.run(t, "plan", "--generate")
	require.ErrorIs(t, err, models.ErrWardrobeTooSmall)
	assert.Equal(t, 0, env.llm.Calls())
}

func TestPlanGenerateAndShow(t *testing.T) {
	wardrobe := test.FakeWardrobe(8)
	env := newTestEnv(test.PlanReply(wardrobe, 7))
	require.NoError(t, env.store.SaveCloset(context.Background(), wardrobe))

	out, err := env.run(t, "plan", "--generate", "--style", "business", "--repeat-limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "mon: wool coat [item_1700000000000_0] + item_1700000000000_1")
	assert.Contains(t, out, "clean lines for the office")

	requests := env.llm.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Text, "- Style: business")
	assert.Contains(t, requests[0].Text, "- Repeat limit per item: 2")

	shown, err := env.run(t, "plan")
	require.NoError(t, err)
	assert.Equal(t, out, shown)
	assert.Equal(t, 1, env.llm.Calls())
}

func TestPlanShowsMissingItems(t *testing.T) {
	wardrobe := test.FakeWardrobe(8)
	env := newTestEnv(test.PlanReply(wardrobe, 7))
	require.NoError(t, env.store.SaveCloset(context.Background(), wardrobe))

	_, err := env.run(t, "plan", "--generate")
	require.NoError(t, err)
	_, err = env.run(t, "remove", "item_1700000000000_1")
	require.NoError(t, err)

	out, err := env.run(t, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "mon: wool coat [item_1700000000000_0] + (missing)")
}

func TestPlanRejectsInvalidPreferences(t *testing.T) {
	for name, args := range map[string][]string{
		"negative repeat limit": {"plan", "--generate", "--repeat-limit", "-1"},
		"repeat limit too high": {"plan", "--generate", "--repeat-limit", "8"},
		"style too long":        {"plan", "--generate", "--style", strings.Repeat("x", 101)},
	} {
		t.Run(name, func(t *testing.T) {
			wardrobe := test.FakeWardrobe(8)
			env := newTestEnv(test.PlanReply(wardrobe, 7))
			require.NoError(t, env.store.SaveCloset(context.Background(), wardrobe))

			_, err := env.run(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid preferences")
			assert.Zero(t, env.llm.Calls())
		})
	}
}
