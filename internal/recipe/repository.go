// Package recipe owns the recipe collection: loading with repair, cleaning
// writes, first-run seeding and the single-record mutations the UI needs.
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/rating"
	"github.com/idilsaglam/recipebox/internal/store"
)

const (
	// DefaultKey is where the collection lives in the store.
	DefaultKey = "recipes"
	// DefaultMaxBytes is the serialized size ceiling for the collection.
	DefaultMaxBytes = 5 * 1024 * 1024
)

// Options tune a Repository. Zero fields take the defaults.
type Options struct {
	Key      string
	MaxBytes int
}

// Repository reads and writes the recipe collection through a store.Store.
// It is the only writer of its key. Methods are not safe for concurrent use.
type Repository struct {
	store    store.Store
	log      *zap.Logger
	notifier Notifier
	key      string
	maxBytes int
}

// New wires a repository. A nil logger or notifier discards output.
func New(s store.Store, log *zap.Logger, n Notifier, opts Options) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	if n == nil {
		n = discard{}
	}
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	return &Repository{
		store:    s,
		log:      log.Named("recipes"),
		notifier: n,
		key:      opts.Key,
		maxBytes: opts.MaxBytes,
	}
}

func (r *Repository) notify(sev Severity, msg string) {
	r.notifier.Notify(Notice{Severity: sev, Message: msg})
}

// readBlob returns the stored value and whether there is one. An empty
// value counts as absent.
func (r *Repository) readBlob() (string, bool, error) {
	blob, ok, err := r.store.Get(r.key)
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w: %w", r.key, ErrPersistence, err)
	}
	if !ok || blob == "" {
		return "", false, nil
	}
	return blob, true, nil
}

// readRecords returns the stored elements, the raw value they came from
// and whether anything is stored.
func (r *Repository) readRecords() ([]record, string, bool, error) {
	blob, ok, err := r.readBlob()
	if err != nil || !ok {
		return nil, "", false, err
	}
	recs, err := parseBlob(blob)
	if err != nil {
		return nil, blob, true, err
	}
	return recs, blob, true, nil
}

// Load returns the stored collection, leniently decoded and in stored
// order. An absent key yields an empty slice. A blob that does not parse as
// an array yields the sample recipes together with an error wrapping
// ErrDataCorrupted; a store read failure yields the samples with
// ErrPersistence.
func (r *Repository) Load() ([]model.Recipe, error) {
	recs, _, found, err := r.readRecords()
	if err != nil {
		r.log.Error("load recipes", zap.Error(err))
		return Samples(), err
	}
	out := make([]model.Recipe, 0, len(recs))
	if !found {
		return out, nil
	}
	for i, rec := range recs {
		if rec == nil {
			r.log.Warn("skipping non-object record", zap.Int("index", i))
			continue
		}
		out = append(out, rec.toRecipe())
	}
	return out, nil
}

// all loads for an operation that may write back. A corrupt blob is
// replaced by the samples (with a notice) rather than aborting.
func (r *Repository) all() ([]model.Recipe, error) {
	recipes, err := r.Load()
	switch {
	case err == nil:
		return recipes, nil
	case errors.Is(err, ErrDataCorrupted):
		r.notify(Error, msgLoadFallback)
		return recipes, nil
	default:
		r.notify(Error, msgLoadFailed)
		return nil, err
	}
}

// List returns the collection for display.
func (r *Repository) List() ([]model.Recipe, error) {
	return r.all()
}

// Save cleans every record and writes the collection. A nil slice is
// rejected with ErrInvalidInput; pass an empty slice for an empty catalog.
// A collection whose serialized size exceeds the ceiling, or a store that
// runs out of room, fails with ErrQuotaExceeded and leaves the stored value
// as it was. Other store failures wrap ErrPersistence. Every failure is
// also reported through the notifier.
func (r *Repository) Save(recipes []model.Recipe) error {
	if recipes == nil {
		r.log.Error("save called without a recipe list")
		r.notify(Error, msgSaveFailed)
		return fmt.Errorf("save: recipes must be a list: %w", ErrInvalidInput)
	}

	size, err := encodedSize(recipes)
	if err != nil {
		r.notify(Error, msgSaveFailed)
		return fmt.Errorf("save: measure: %w: %w", ErrInvalidInput, err)
	}
	if size > r.maxBytes {
		r.log.Warn("collection over size ceiling", zap.Int("bytes", size), zap.Int("limit", r.maxBytes))
		r.notify(Error, msgStorageLimit)
		return fmt.Errorf("save: %d bytes over the %d byte ceiling: %w", size, r.maxBytes, ErrQuotaExceeded)
	}

	cleaned := make([]model.Recipe, len(recipes))
	for i, rec := range recipes {
		cleaned[i] = Clean(rec)
	}
	blob, err := json.Marshal(cleaned)
	if err != nil {
		r.notify(Error, msgSaveFailed)
		return fmt.Errorf("save: json marshal: %w: %w", ErrInvalidInput, err)
	}

	if err := r.store.Set(r.key, string(blob)); err != nil {
		r.log.Error("write recipes", zap.Error(err))
		if errors.Is(err, store.ErrQuotaExceeded) {
			r.notify(Error, msgStorageFull)
			return fmt.Errorf("save: %w: %w", ErrQuotaExceeded, err)
		}
		r.notify(Error, msgSaveFailed)
		return fmt.Errorf("save: %w: %w", ErrPersistence, err)
	}
	r.log.Debug("saved recipes", zap.Int("records", len(cleaned)), zap.Int("bytes", len(blob)))
	return nil
}

// encodedSize is the JSON size of recipes as given. Non-finite ratings,
// which JSON cannot carry, are counted as 0.
func encodedSize(recipes []model.Recipe) (int, error) {
	view, cloned := recipes, false
	for i, rec := range recipes {
		if math.IsNaN(rec.Rating) || math.IsInf(rec.Rating, 0) {
			if !cloned {
				view, cloned = slices.Clone(recipes), true
			}
			view[i].Rating = 0
		}
	}
	b, err := json.Marshal(view)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// SeedIfEmpty writes the sample recipes when nothing is stored yet and
// reports whether it did.
func (r *Repository) SeedIfEmpty() (bool, error) {
	_, found, err := r.readBlob()
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if found {
		return false, nil
	}
	samples := Samples()
	if err := r.Save(samples); err != nil {
		return false, err
	}
	r.log.Info("seeded sample recipes", zap.Int("records", len(samples)))
	return true, nil
}

// RepairAndLoad loads the collection and drops every record that fails the
// structural check, along with later records reusing an id. If anything was
// dropped the repaired list is saved at once and an info notice emitted.
// Records that only needed cleaning are written back without a notice. If
// the stored value cannot be read at all, the key is cleared and reseeded
// and the samples are returned.
func (r *Repository) RepairAndLoad() ([]model.Recipe, error) {
	recs, blob, found, err := r.readRecords()
	if err != nil {
		return r.reset(err)
	}
	valid := make([]model.Recipe, 0, len(recs))
	if !found {
		return valid, nil
	}

	dropped := 0
	seen := make(map[string]bool, len(recs))
	for i, rec := range recs {
		if !rec.wellFormed() {
			dropped++
			r.log.Warn("dropping malformed record", zap.Int("index", i))
			continue
		}
		cleaned := Clean(rec.toRecipe())
		if seen[cleaned.ID] {
			dropped++
			r.log.Warn("dropping duplicate record", zap.Int("index", i), zap.String("id", cleaned.ID))
			continue
		}
		seen[cleaned.ID] = true
		valid = append(valid, cleaned)
	}

	if dropped == 0 {
		canonical, err := json.Marshal(valid)
		if err != nil || string(canonical) == blob {
			return valid, nil
		}
		r.log.Info("rewriting cleaned recipes", zap.Int("records", len(valid)))
		if err := r.Save(valid); err != nil {
			r.log.Warn("write back cleaned recipes", zap.Error(err))
		}
		return valid, nil
	}

	r.log.Warn("repaired stored recipes", zap.Int("dropped", dropped), zap.Int("kept", len(valid)))
	if err := r.Save(valid); err != nil {
		return valid, err
	}
	r.notify(Info, msgRepaired)
	return valid, nil
}

func (r *Repository) reset(cause error) ([]model.Recipe, error) {
	r.log.Error("stored recipes unusable, resetting", zap.Error(cause))
	if err := r.store.Remove(r.key); err != nil {
		r.notify(Error, msgSaveFailed)
		return nil, fmt.Errorf("reset: remove %q: %w: %w", r.key, ErrPersistence, err)
	}
	if _, err := r.SeedIfEmpty(); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	r.notify(Error, msgCorrupted)
	return cleanAll(Samples()), nil
}

// Init prepares the store for a session: first run seeds, later runs
// repair.
func (r *Repository) Init() ([]model.Recipe, error) {
	seeded, err := r.SeedIfEmpty()
	if err != nil {
		return nil, err
	}
	if seeded {
		return cleanAll(Samples()), nil
	}
	return r.RepairAndLoad()
}

func cleanAll(in []model.Recipe) []model.Recipe {
	out := make([]model.Recipe, len(in))
	for i, rec := range in {
		out[i] = Clean(rec)
	}
	return out
}

func indexOf(recipes []model.Recipe, id string) int {
	return slices.IndexFunc(recipes, func(rec model.Recipe) bool { return rec.ID == id })
}

// Get returns the recipe with id, or ErrNotFound.
func (r *Repository) Get(id string) (model.Recipe, error) {
	recipes, err := r.all()
	if err != nil {
		return model.Recipe{}, err
	}
	i := indexOf(recipes, id)
	if i < 0 {
		r.notify(Error, msgNotFound)
		return model.Recipe{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return Clean(recipes[i]), nil
}

// SetRating stores a new half-star rating for id. An unknown id is a
// no-op. A failed save is returned but nothing is rolled back; the next
// load shows what was persisted.
func (r *Repository) SetRating(id string, value float64) error {
	recipes, err := r.all()
	if err != nil {
		return err
	}
	i := indexOf(recipes, id)
	if i < 0 {
		r.log.Debug("rating for unknown recipe ignored", zap.String("id", id))
		return nil
	}
	recipes[i].Rating = rating.Normalize(value)
	if err := r.Save(recipes); err != nil {
		return fmt.Errorf("set rating %q: %w", id, err)
	}
	r.log.Info("rating saved", zap.String("id", id), zap.Float64("rating", recipes[i].Rating))
	return nil
}

// Upsert stores a validated draft. A draft without an id, or with an id not
// in the collection, is appended with rating 0; a draft matching an existing
// id replaces it in place and keeps its rating. It returns the stored record
// and whether it was an edit.
func (r *Repository) Upsert(draft model.Recipe) (model.Recipe, bool, error) {
	recipes, err := r.all()
	if err != nil {
		return model.Recipe{}, false, err
	}
	draft = draft.Clone()
	if draft.ID == "" {
		draft.ID = NewID()
	}

	i := indexOf(recipes, draft.ID)
	isEdit := i >= 0
	if isEdit {
		draft.Rating = rating.Normalize(recipes[i].Rating)
		recipes[i] = draft
	} else {
		draft.Rating = 0
		recipes = append(recipes, draft)
	}

	if err := r.Save(recipes); err != nil {
		return model.Recipe{}, isEdit, err
	}
	verb := "added"
	if isEdit {
		verb = "updated"
	}
	stored := Clean(draft)
	r.log.Info("recipe "+verb, zap.String("id", stored.ID))
	r.notify(Success, fmt.Sprintf("Recipe \"%s\" %s successfully!", stored.Title, verb))
	return stored, isEdit, nil
}

// Delete removes id from the collection and returns the removed record.
// An unknown id leaves the collection untouched and fails with ErrNotFound.
func (r *Repository) Delete(id string) (model.Recipe, error) {
	recipes, err := r.all()
	if err != nil {
		return model.Recipe{}, err
	}
	i := indexOf(recipes, id)
	if i < 0 {
		r.notify(Error, msgAlreadyDeleted)
		return model.Recipe{}, fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	removed := recipes[i]
	recipes = slices.Delete(recipes, i, i+1)
	if err := r.Save(recipes); err != nil {
		return model.Recipe{}, err
	}
	r.log.Info("recipe deleted", zap.String("id", id))
	r.notify(Success, fmt.Sprintf("Recipe \"%s\" deleted successfully!", removed.Title))
	return removed, nil
}
