package leadbook

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is an EntryStore over the profile files of a data path. Each
// write loads the broker's profile, applies the change and saves the file
// back in canonical form.
type FileStore struct {
	path string
}

// NewFileStore creates a store over the given data path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) List(broker string) ([]DailyEntry, error) {
	p, err := FindProfile(s.path, broker)
	if err != nil {
		return nil, err
	}
	return p.Entries(), nil
}

func (s *FileStore) Upsert(broker string, e DailyEntry) error {
	p, err := FindProfile(s.path, broker)
	if err != nil {
		return err
	}
	p.Upsert(e)
	return SaveProfile(s.path, p)
}

func (s *FileStore) Delete(broker string, on Date) error {
	p, err := FindProfile(s.path, broker)
	if err != nil {
		return err
	}
	if !p.Delete(on) {
		return nil
	}
	return SaveProfile(s.path, p)
}

var _ EntryStore = (*FileStore)(nil)

// DirDraftCache is a DraftCache over scratch files under the ".drafts"
// directory of a data path, one file per (broker, date). Drafts survive
// between command invocations until committed or cleared.
type DirDraftCache struct {
	root string
}

// NewDirDraftCache creates a draft cache under "<path>/.drafts".
func NewDirDraftCache(path string) *DirDraftCache {
	return &DirDraftCache{root: filepath.Join(path, draftsDirName)}
}

func (c *DirDraftCache) file(broker string, on Date) string {
	return filepath.Join(c.root, broker, on.String()+".json")
}

func (c *DirDraftCache) Get(broker string, on Date) ([]byte, bool, error) {
	data, err := os.ReadFile(c.file(broker, on))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *DirDraftCache) Set(broker string, on Date, data []byte) error {
	dir := filepath.Dir(c.file(broker, on))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(c.file(broker, on), data, 0644)
}

func (c *DirDraftCache) Clear(broker string, on Date) error {
	err := os.Remove(c.file(broker, on))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var _ DraftCache = (*DirDraftCache)(nil)

// MemStore is an in-memory EntryStore, handy for embedding the engine and
// for tests.
type MemStore struct {
	entries map[string]map[Date]DailyEntry
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]map[Date]DailyEntry)}
}

func (s *MemStore) List(broker string) ([]DailyEntry, error) {
	out := make([]DailyEntry, 0, len(s.entries[broker]))
	for _, e := range s.entries[broker] {
		out = append(out, e)
	}
	return out, nil
}

func (s *MemStore) Upsert(broker string, e DailyEntry) error {
	if s.entries[broker] == nil {
		s.entries[broker] = make(map[Date]DailyEntry)
	}
	s.entries[broker][e.Date] = e
	return nil
}

func (s *MemStore) Delete(broker string, on Date) error {
	delete(s.entries[broker], on)
	return nil
}

var _ EntryStore = (*MemStore)(nil)

// MemDraftCache is an in-memory DraftCache scoped to one session.
type MemDraftCache struct {
	drafts map[string]map[Date][]byte
}

// NewMemDraftCache creates an empty in-memory draft cache.
func NewMemDraftCache() *MemDraftCache {
	return &MemDraftCache{drafts: make(map[string]map[Date][]byte)}
}

func (c *MemDraftCache) Get(broker string, on Date) ([]byte, bool, error) {
	data, ok := c.drafts[broker][on]
	return data, ok, nil
}

func (c *MemDraftCache) Set(broker string, on Date, data []byte) error {
	if c.drafts[broker] == nil {
		c.drafts[broker] = make(map[Date][]byte)
	}
	c.drafts[broker][on] = data
	return nil
}

func (c *MemDraftCache) Clear(broker string, on Date) error {
	delete(c.drafts[broker], on)
	return nil
}

var _ DraftCache = (*MemDraftCache)(nil)
