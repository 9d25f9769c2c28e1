package recipe

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/store"
	"github.com/idilsaglam/recipebox/internal/store/memstore"
)

func setupRepo(t *testing.T) (*Repository, *memstore.Store, *Notices) {
	t.Helper()
	s := memstore.New(0)
	notices := &Notices{}
	return New(s, zaptest.NewLogger(t), notices, Options{}), s, notices
}

func stored(t *testing.T, s store.Store) []map[string]any {
	t.Helper()
	blob, ok, err := s.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok, "nothing stored")
	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(blob), &out))
	return out
}

func draft(title string) model.Recipe {
	return model.Recipe{
		Title:       title,
		Description: "A recipe used in tests.",
		Ingredients: []string{"water"},
		Steps:       []string{"boil"},
		PrepTime:    5,
		CookTime:    10,
		Difficulty:  model.Easy,
	}
}

func TestLoadAbsentIsEmpty(t *testing.T) {
	repo, _, notices := setupRepo(t)
	got, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, notices.Drain())
}

func TestLoadCorruptFallsBackToSamples(t *testing.T) {
	for _, blob := range []string{"{oops", `{"id":"a"}`, "null"} {
		repo, s, _ := setupRepo(t)
		require.NoError(t, s.Set(DefaultKey, blob))

		got, err := repo.Load()
		require.ErrorIs(t, err, ErrDataCorrupted, blob)
		assert.Len(t, got, len(Samples()), blob)
	}
}

func TestLoadReadFailure(t *testing.T) {
	repo := New(failingGetStore{}, zaptest.NewLogger(t), nil, Options{})
	got, err := repo.Load()
	require.ErrorIs(t, err, ErrPersistence)
	assert.Len(t, got, len(Samples()))
}

func TestSaveRejectsNil(t *testing.T) {
	repo, s, notices := setupRepo(t)
	err := repo.Save(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, ok, _ := s.Get(DefaultKey)
	assert.False(t, ok)
	n, _ := notices.Last()
	assert.Equal(t, Error, n.Severity)
}

func TestSaveEmptyList(t *testing.T) {
	repo, s, _ := setupRepo(t)
	require.NoError(t, repo.Save([]model.Recipe{}))
	blob, _, _ := s.Get(DefaultKey)
	assert.Equal(t, "[]", blob)
}

func TestSaveOverCeilingLeavesStoreUntouched(t *testing.T) {
	repo, s, notices := setupRepo(t)
	require.NoError(t, repo.Save(Samples()))
	before, _, _ := s.Get(DefaultKey)

	big := draft("Huge")
	big.Description = strings.Repeat("a", 6*1024*1024)
	err := repo.Save([]model.Recipe{big})
	require.ErrorIs(t, err, ErrQuotaExceeded)

	after, _, _ := s.Get(DefaultKey)
	assert.Equal(t, before, after)
	n, _ := notices.Last()
	assert.Equal(t, Notice{Severity: Error, Message: msgStorageLimit}, n)
}

func TestSaveHonorsConfiguredCeiling(t *testing.T) {
	s := memstore.New(0)
	repo := New(s, zaptest.NewLogger(t), nil, Options{MaxBytes: 64})
	err := repo.Save(Samples())
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestSaveStoreQuota(t *testing.T) {
	s := memstore.New(100)
	notices := &Notices{}
	repo := New(s, zaptest.NewLogger(t), notices, Options{})

	err := repo.Save(Samples())
	require.ErrorIs(t, err, ErrQuotaExceeded)
	require.ErrorIs(t, err, store.ErrQuotaExceeded)
	n, _ := notices.Last()
	assert.Equal(t, msgStorageFull, n.Message)
}

func TestSavePersistenceFailure(t *testing.T) {
	s := memstore.New(0)
	s.FailWith = errors.New("disk on fire")
	notices := &Notices{}
	repo := New(s, zaptest.NewLogger(t), notices, Options{})

	err := repo.Save(Samples())
	require.ErrorIs(t, err, ErrPersistence)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	n, _ := notices.Last()
	assert.Equal(t, msgSaveFailed, n.Message)
}

func TestSaveCleansRecords(t *testing.T) {
	repo, s, _ := setupRepo(t)
	require.NoError(t, repo.Save(hostileRecipes()))
	recs := stored(t, s)
	require.Len(t, recs, len(hostileRecipes()))
	assert.Len(t, recs[1]["title"], 100)
	assert.Equal(t, "easy", recs[3]["difficulty"])
	assert.Equal(t, 0.0, recs[3]["rating"])
}

func TestSaveThenRepairRoundTrip(t *testing.T) {
	repo, _, notices := setupRepo(t)
	require.NoError(t, repo.Save(hostileRecipes()))

	got, err := repo.RepairAndLoad()
	require.NoError(t, err)
	require.Len(t, got, len(hostileRecipes()))
	for _, r := range got {
		assertLegal(t, r)
	}
	assert.Empty(t, notices.Drain(), "clean data needs no repair")
}

func TestRepairDropsMalformedRecords(t *testing.T) {
	repo, s, notices := setupRepo(t)
	require.NoError(t, s.Set(DefaultKey, `[{"id":"x"}]`))

	got, err := repo.RepairAndLoad()
	require.NoError(t, err)
	assert.Empty(t, got)

	blob, _, _ := s.Get(DefaultKey)
	assert.Equal(t, "[]", blob)
	assert.Equal(t, []Notice{{Severity: Info, Message: "Data issues detected and fixed automatically"}}, notices.Drain())
}

func TestRepairKeepsOrderOfGoodRecords(t *testing.T) {
	repo, s, _ := setupRepo(t)
	blob := `[
		{"id":"a","title":"A","prepTime":1,"cookTime":2,"difficulty":"easy"},
		null,
		{"id":"b","title":"B","prepTime":"1","cookTime":2,"difficulty":"easy"},
		{"id":"c","title":"C","prepTime":1,"cookTime":2,"difficulty":"hard","rating":3.3}
	]`
	require.NoError(t, s.Set(DefaultKey, blob))

	got, err := repo.RepairAndLoad()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, 3.5, got[1].Rating)
	assert.Len(t, stored(t, s), 2)
}

func TestRepairResetsCorruptStore(t *testing.T) {
	repo, s, notices := setupRepo(t)
	require.NoError(t, s.Set(DefaultKey, "][ definitely not json"))

	got, err := repo.RepairAndLoad()
	require.NoError(t, err)
	assert.Len(t, got, len(Samples()))
	assert.Len(t, stored(t, s), len(Samples()))
	assert.Equal(t, []Notice{{Severity: Error, Message: "Data corrupted. Reset to default recipes."}}, notices.Drain())
}

func TestRepairDropsDuplicateIDs(t *testing.T) {
	repo, s, notices := setupRepo(t)
	blob := `[
		{"id":"a","title":"First","prepTime":1,"cookTime":2,"difficulty":"easy"},
		{"id":"a","title":"Second","prepTime":1,"cookTime":2,"difficulty":"hard"},
		{"id":"b","title":"B","prepTime":1,"cookTime":2,"difficulty":"medium"}
	]`
	require.NoError(t, s.Set(DefaultKey, blob))

	got, err := repo.RepairAndLoad()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "b", got[1].ID)
	assert.Len(t, stored(t, s), 2)
	assert.Equal(t, []Notice{{Severity: Info, Message: "Data issues detected and fixed automatically"}}, notices.Drain())

	removed, err := repo.Delete("a")
	require.NoError(t, err)
	assert.Equal(t, "First", removed.Title)
	_, err = repo.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepairWritesBackCleanedValues(t *testing.T) {
	repo, s, notices := setupRepo(t)
	blob := `[{"id":"a","title":"A","prepTime":5000,"cookTime":2,"difficulty":"easy","rating":3.3}]`
	require.NoError(t, s.Set(DefaultKey, blob))

	got, err := repo.RepairAndLoad()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, MaxMinutes, got[0].PrepTime)

	recs := stored(t, s)
	require.Len(t, recs, 1)
	assert.Equal(t, float64(MaxMinutes), recs[0]["prepTime"])
	assert.Equal(t, 3.5, recs[0]["rating"])
	assert.Empty(t, notices.Drain(), "cleaning alone is silent")

	before, _, _ := s.Get(DefaultKey)
	_, err = repo.RepairAndLoad()
	require.NoError(t, err)
	after, _, _ := s.Get(DefaultKey)
	assert.Equal(t, before, after)
}

func TestEmptyValueIsAbsent(t *testing.T) {
	repo, s, notices := setupRepo(t)
	require.NoError(t, s.Set(DefaultKey, ""))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	recipes, err := repo.Init()
	require.NoError(t, err)
	assert.Len(t, recipes, len(Samples()))
	assert.Len(t, stored(t, s), len(Samples()))
	assert.Empty(t, notices.Drain())
}

func TestSeedIfEmpty(t *testing.T) {
	repo, s, _ := setupRepo(t)

	seeded, err := repo.SeedIfEmpty()
	require.NoError(t, err)
	assert.True(t, seeded)
	recs := stored(t, s)
	require.Len(t, recs, 4)
	assert.Equal(t, "classic-dal-rice", recs[0]["id"])

	seeded, err = repo.SeedIfEmpty()
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestSamplesAreLegal(t *testing.T) {
	for _, r := range Samples() {
		assertLegal(t, r)
		assert.Equal(t, r, Clean(r), "sample %s changes under cleaning", r.ID)
	}
}

func TestInit(t *testing.T) {
	repo, _, _ := setupRepo(t)
	first, err := repo.Init()
	require.NoError(t, err)
	assert.Len(t, first, 4)

	_, err = repo.Delete("violet-velvet-cake")
	require.NoError(t, err)

	second, err := repo.Init()
	require.NoError(t, err)
	assert.Len(t, second, 3)
}

func TestSetRating(t *testing.T) {
	repo, s, _ := setupRepo(t)
	_, err := repo.SeedIfEmpty()
	require.NoError(t, err)

	require.NoError(t, repo.SetRating("classic-dal-rice", 2.74))
	got, err := repo.Get("classic-dal-rice")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Rating)

	before, _, _ := s.Get(DefaultKey)
	require.NoError(t, repo.SetRating("missing", 3))
	after, _, _ := s.Get(DefaultKey)
	assert.Equal(t, before, after)
}

func TestSetRatingReportsSaveFailure(t *testing.T) {
	repo, s, _ := setupRepo(t)
	_, err := repo.SeedIfEmpty()
	require.NoError(t, err)
	s.FailWith = errors.New("read-only")

	err = repo.SetRating("classic-dal-rice", 1)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestUpsertAddsThenEdits(t *testing.T) {
	repo, _, notices := setupRepo(t)
	_, err := repo.SeedIfEmpty()
	require.NoError(t, err)

	added, isEdit, err := repo.Upsert(draft("Tomato Soup"))
	require.NoError(t, err)
	assert.False(t, isEdit)
	assert.True(t, strings.HasPrefix(added.ID, "recipe-"))
	assert.Zero(t, added.Rating)
	n, _ := notices.Last()
	assert.Equal(t, Notice{Severity: Success, Message: `Recipe "Tomato Soup" added successfully!`}, n)

	require.NoError(t, repo.SetRating(added.ID, 4))

	edit := draft("Tomato Soup II")
	edit.ID = added.ID
	edit.Rating = 1 // ignored on edit
	updated, isEdit, err := repo.Upsert(edit)
	require.NoError(t, err)
	assert.True(t, isEdit)
	assert.Equal(t, 4.0, updated.Rating)
	n, _ = notices.Last()
	assert.Equal(t, `Recipe "Tomato Soup II" updated successfully!`, n.Message)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, added.ID, all[4].ID, "edits replace in place")
	assert.Equal(t, "Tomato Soup II", all[4].Title)
}

func TestUpsertNewIgnoresDraftRating(t *testing.T) {
	repo, _, _ := setupRepo(t)
	d := draft("Bread")
	d.Rating = 5
	got, _, err := repo.Upsert(d)
	require.NoError(t, err)
	assert.Zero(t, got.Rating)
}

func TestDeleteUnknownID(t *testing.T) {
	repo, s, notices := setupRepo(t)
	_, err := repo.SeedIfEmpty()
	require.NoError(t, err)
	notices.Drain()
	before, _, _ := s.Get(DefaultKey)

	_, err = repo.Delete("nope")
	require.ErrorIs(t, err, ErrNotFound)

	after, _, _ := s.Get(DefaultKey)
	assert.Equal(t, before, after)
	assert.Equal(t, []Notice{{Severity: Error, Message: "Recipe not found. It may have already been deleted."}}, notices.Drain())
}

func TestDelete(t *testing.T) {
	repo, s, notices := setupRepo(t)
	_, err := repo.SeedIfEmpty()
	require.NoError(t, err)

	removed, err := repo.Delete("paneer-butter-masala")
	require.NoError(t, err)
	assert.Equal(t, "Paneer Butter Masala", removed.Title)
	n, _ := notices.Last()
	assert.Equal(t, `Recipe "Paneer Butter Masala" deleted successfully!`, n.Message)

	recs := stored(t, s)
	require.Len(t, recs, 3)
	assert.Equal(t, "classic-dal-rice", recs[0]["id"])
	assert.Equal(t, "violet-velvet-cake", recs[1]["id"])
	assert.Equal(t, "chocolate-banana-bread", recs[2]["id"])
}

func TestDeleteLastLeavesEmptyArray(t *testing.T) {
	repo, s, _ := setupRepo(t)
	added, _, err := repo.Upsert(draft("Only"))
	require.NoError(t, err)
	_, err = repo.Delete(added.ID)
	require.NoError(t, err)
	blob, _, _ := s.Get(DefaultKey)
	assert.Equal(t, "[]", blob)
}

func TestGetNotFound(t *testing.T) {
	repo, _, notices := setupRepo(t)
	_, err := repo.Get("ghost")
	require.ErrorIs(t, err, ErrNotFound)
	n, _ := notices.Last()
	assert.Equal(t, "Recipe not found. It may have been deleted.", n.Message)
}

func TestMutationOnCorruptStoreUsesSamples(t *testing.T) {
	repo, s, notices := setupRepo(t)
	require.NoError(t, s.Set(DefaultKey, "garbage"))

	require.NoError(t, repo.SetRating("classic-dal-rice", 1))
	recs := stored(t, s)
	assert.Len(t, recs, 4)
	assert.Equal(t, 1.0, recs[0]["rating"])
	assert.Equal(t, msgLoadFallback, notices.Drain()[0].Message)
}

type failingGetStore struct{}

func (failingGetStore) Get(string) (string, bool, error) { return "", false, errors.New("io error") }
func (failingGetStore) Set(string, string) error        { return nil }
func (failingGetStore) Remove(string) error             { return nil }
