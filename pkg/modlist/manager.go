// Package modlist implements the list manager: get/add/remove/update and
// positional reordering over a profile's persisted mod list.
//
// Every operation loads the list fresh from the backing file, transforms
// it in memory, persists, and re-reads so the returned list is always the
// authoritative on-disk state. Mutating operations on the same profile are
// serialized behind a per-profile mutex; cross-process locking is out of
// scope.
package modlist

import (
	"path/filepath"
	"sync"

	"github.com/arthur-debert/modstack/pkg/codec"
	"github.com/arthur-debert/modstack/pkg/logging"
	"github.com/arthur-debert/modstack/pkg/store"
	"github.com/arthur-debert/modstack/pkg/types"
)

// Transform mutates a record in place during an Update operation
type Transform func(*types.Record)

// Manager exposes the list operations for any profile
type Manager struct {
	store        *store.Store
	modsFileName string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Manager over the given filesystem. modsFileName is the
// backing file's name within each profile directory, usually "mods.yml".
func New(fs types.FS, modsFileName string) *Manager {
	return &Manager{
		store:        store.New(fs),
		modsFileName: modsFileName,
		locks:        make(map[string]*sync.Mutex),
	}
}

// ModsFilePath returns the backing file path for a profile
func (m *Manager) ModsFilePath(profile types.Profile) string {
	return filepath.Join(profile.Path, m.modsFileName)
}

// profileLock returns the mutex serializing mutations of one profile
func (m *Manager) profileLock(profile types.Profile) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[profile.Path]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[profile.Path] = lock
	}
	return lock
}

// List returns the profile's current persisted list. A missing backing
// file is created empty; a genuine read failure or a malformed payload
// surfaces as a NOT_FOUND or PARSE coded error respectively.
func (m *Manager) List(profile types.Profile) (types.ModList, error) {
	return m.load(profile)
}

// AddOrReplace inserts a record, replacing any existing record with the
// same name while keeping its position in the list. A genuinely new name
// is appended at the end. A load failure is tolerated by starting from an
// empty list, so an entry gets recorded even on a fresh or corrupt
// profile.
func (m *Manager) AddOrReplace(profile types.Profile, rec types.Record) (types.ModList, error) {
	lock := m.profileLock(profile)
	lock.Lock()
	defer lock.Unlock()

	logger := logging.GetLogger("modlist.add")

	list, err := m.load(profile)
	insertAt := -1
	if err != nil {
		logger.Warn().Err(err).
			Str("profile", profile.Name).
			Msg("Could not load current list, starting from empty")
		list = types.ModList{}
	} else if insertAt = list.IndexOf(rec.Name); insertAt >= 0 {
		// Remove-then-reinsert keeps a replaced record at its slot
		// instead of moving it to the end.
		if _, err := m.removeLocked(profile, rec.Name); err != nil {
			return nil, err
		}
		if list, err = m.load(profile); err != nil {
			return nil, err
		}
	}

	if insertAt >= 0 && insertAt <= len(list) {
		list = append(list, types.Record{})
		copy(list[insertAt+1:], list[insertAt:])
		list[insertAt] = rec
	} else {
		list = append(list, rec)
	}

	if err := m.save(profile, list); err != nil {
		return nil, err
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("mod", rec.Name).
		Int("position", listPosition(insertAt, len(list))).
		Msg("Recorded mod")

	return m.load(profile)
}

// Remove deletes every record with the given record's name. Removing an
// absent name succeeds and leaves the list unchanged. Unlike AddOrReplace,
// a load failure propagates: the caller must know the source list state
// before a removal.
func (m *Manager) Remove(profile types.Profile, rec types.Record) (types.ModList, error) {
	lock := m.profileLock(profile)
	lock.Lock()
	defer lock.Unlock()

	return m.removeLocked(profile, rec.Name)
}

// Update applies transform in place to every record matching the given
// record's name, then persists. Names are expected unique, so typically
// exactly one record is touched; if duplicates ever existed, all are.
func (m *Manager) Update(profile types.Profile, rec types.Record, transform Transform) (types.ModList, error) {
	lock := m.profileLock(profile)
	lock.Lock()
	defer lock.Unlock()

	logger := logging.GetLogger("modlist.update")

	list, err := m.load(profile)
	if err != nil {
		return nil, err
	}

	updated := 0
	for i := range list {
		if list[i].Name == rec.Name {
			transform(&list[i])
			updated++
		}
	}

	if err := m.save(profile, list); err != nil {
		return nil, err
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("mod", rec.Name).
		Int("updated", updated).
		Msg("Updated mod")

	return m.load(profile)
}

// ShiftUp moves the named record one position earlier in the list. The
// first record, or an absent name, is a no-op returning the list as-is.
func (m *Manager) ShiftUp(profile types.Profile, rec types.Record) (types.ModList, error) {
	return m.shift(profile, rec, -1)
}

// ShiftDown moves the named record one position later in the list. The
// last record, or an absent name, is a no-op returning the list as-is.
func (m *Manager) ShiftDown(profile types.Profile, rec types.Record) (types.ModList, error) {
	return m.shift(profile, rec, +1)
}

func (m *Manager) shift(profile types.Profile, rec types.Record, delta int) (types.ModList, error) {
	lock := m.profileLock(profile)
	lock.Lock()
	defer lock.Unlock()

	logger := logging.GetLogger("modlist.shift")

	list, err := m.load(profile)
	if err != nil {
		return nil, err
	}

	idx := list.IndexOf(rec.Name)
	if idx < 0 {
		return list, nil
	}

	// The boundary is the first index shifting up and the last index
	// shifting down; either way the move is a no-op.
	target := idx + delta
	if target < 0 || target >= len(list) {
		return list, nil
	}

	list[idx], list[target] = list[target], list[idx]

	if err := m.save(profile, list); err != nil {
		return nil, err
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("mod", rec.Name).
		Int("from", idx).
		Int("to", target).
		Msg("Shifted mod")

	return m.load(profile)
}

// removeLocked implements Remove; callers hold the profile lock
func (m *Manager) removeLocked(profile types.Profile, name string) (types.ModList, error) {
	logger := logging.GetLogger("modlist.remove")

	list, err := m.load(profile)
	if err != nil {
		return nil, err
	}

	kept := make(types.ModList, 0, len(list))
	for _, r := range list {
		if r.Name != name {
			kept = append(kept, r)
		}
	}

	if err := m.save(profile, kept); err != nil {
		return nil, err
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("mod", name).
		Int("removed", len(list)-len(kept)).
		Msg("Removed mod")

	return m.load(profile)
}

// load reads and decodes the current persisted list
func (m *Manager) load(profile types.Profile) (types.ModList, error) {
	data, err := m.store.Read(m.ModsFilePath(profile))
	if err != nil {
		return nil, err
	}
	return codec.Decode(data, profile.Name)
}

// save encodes and persists the list; either the full new state is
// written or the write fails before touching the file
func (m *Manager) save(profile types.Profile, list types.ModList) error {
	data, err := codec.Encode(list)
	if err != nil {
		return err
	}
	return m.store.Write(m.ModsFilePath(profile), data)
}

func listPosition(insertAt, length int) int {
	if insertAt >= 0 {
		return insertAt
	}
	return length - 1
}
