// Package shoplist owns the authoritative in-memory shopping list and keeps
// it consistent with the remote store. Adds are pessimistic (the store
// confirms before the list changes), removes are optimistic (the list changes
// first and rolls back on failure). That asymmetry is deliberate: deletes feel
// snappy, and failed creates never leave phantom items behind.
package shoplist

import (
	"context"
	"slices"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/seblw/grocli/internal/model"
	"github.com/seblw/grocli/internal/store/webstore"
)

// State tracks where the list is in its load lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "uninitialized"
	}
}

// Store is the slice of the remote store the reconciler needs.
type Store interface {
	LoadAll(ctx context.Context) (map[string]webstore.Record, error)
	Create(ctx context.Context, rec webstore.Record) (string, error)
	Delete(ctx context.Context, key string) error
}

// Reconciler is the only component that mutates the list. Operations are
// serialized internally: rollback by index is only sound when mutations
// cannot interleave, and the TUI fires operations from goroutines.
type Reconciler struct {
	store Store
	log   *zap.Logger

	mu      sync.Mutex
	state   State
	items   []model.Item
	lastErr error
}

func New(store Store, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{store: store, log: log, state: StateUninitialized}
}

// Load replaces the list with the remote collection's content. Records are
// materialized sorted by store key: the store returns an unordered keyed
// object, and keys are assigned monotonically, so key order is a stable
// stand-in for insertion order.
//
// Any record whose category cannot be resolved fails the whole load.
func (r *Reconciler) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = StateLoading
	r.lastErr = nil

	records, err := r.store.LoadAll(ctx)
	if err != nil {
		r.state = StateError
		r.lastErr = err
		r.log.Warn("load failed", zap.Error(err))
		return err
	}

	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	items := make([]model.Item, 0, len(keys))
	for _, k := range keys {
		rec := records[k]
		cat, cerr := model.FindByDisplayName(rec.Category)
		if cerr != nil {
			resErr := &CategoryResolutionError{Key: k, Category: rec.Category, Err: cerr}
			r.state = StateError
			r.lastErr = resErr
			r.log.Warn("load failed", zap.Error(resErr))
			return resErr
		}
		items = append(items, model.Item{ID: k, Name: rec.Name, Quantity: rec.Quantity, Category: cat})
	}

	r.items = items
	r.state = StateReady
	r.log.Info("list loaded", zap.Int("items", len(items)))
	return nil
}

type addInput struct {
	Name     string
	Quantity int
}

func (in *addInput) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&in.Quantity, validation.Required, validation.Min(1)),
	)
}

// Add validates, persists, and only then appends. A failed create leaves the
// list untouched; the returned item carries the store-assigned id.
func (r *Reconciler) Add(ctx context.Context, name string, quantity int, categoryID model.CategoryID) (model.Item, error) {
	name = strings.TrimSpace(name)
	in := addInput{Name: name, Quantity: quantity}
	if err := in.Validate(); err != nil {
		return model.Item{}, &ValidationError{err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cat := model.Lookup(categoryID)
	key, err := r.store.Create(ctx, webstore.Record{Name: name, Quantity: quantity, Category: cat.Name})
	if err != nil {
		r.log.Warn("add failed", zap.String("name", name), zap.Error(err))
		return model.Item{}, err
	}

	item := model.Item{ID: key, Name: name, Quantity: quantity, Category: cat}
	r.items = append(r.items, item)
	r.log.Info("item added", zap.String("id", key), zap.String("name", name))
	return item, nil
}

// Remove takes the item out of the list immediately, then asks the store to
// delete it. On failure the item goes back at its original index so ordering
// is restored exactly. Removing an item that is no longer present is a no-op.
func (r *Reconciler) Remove(ctx context.Context, item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.items, func(it model.Item) bool { return it.ID == item.ID })
	if idx < 0 {
		return nil
	}
	captured := r.items[idx]
	r.items = slices.Delete(slices.Clone(r.items), idx, idx+1)

	if err := r.store.Delete(ctx, captured.ID); err != nil {
		r.items = slices.Insert(r.items, idx, captured)
		r.log.Warn("remove rolled back", zap.String("id", captured.ID), zap.Int("index", idx), zap.Error(err))
		return err
	}
	r.log.Info("item removed", zap.String("id", captured.ID))
	return nil
}

// Items returns a snapshot; callers never see or touch the backing slice.
func (r *Reconciler) Items() []model.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the error that put the reconciler in StateError, if any.
func (r *Reconciler) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
