package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mwhitley/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketSession   = []byte("session")
	bucketFavorites = []byte("favorites")
	bucketState     = []byte("state")
)

// Record keys
const (
	keyUser       = "current"
	keyFavorites  = "list"
	keyLastSearch = "last_search"
)

// Store is the local durable key-value store backing session, favorites and
// view state. Values are JSON; a record that fails to parse is treated as
// absent rather than surfaced as an error.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex

	// In-memory copy of every record; sole backing in memory-only mode
	cache map[string][]byte
}

// New opens (or creates) the store at dir. An empty dir selects memory-only
// mode with no persistence.
func New(dir string) (*Store, error) {
	if dir == "" {
		return &Store{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "reel.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSession, bucketFavorites, bucketState} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: make(map[string][]byte)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *Store) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *Store) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Session ===

func (s *Store) GetUser() (domain.User, bool) {
	var user domain.User
	ok := s.get(bucketSession, keyUser, &user)
	if ok && user.ID == "" {
		// A record that parses but carries no identity is as good as corrupt
		return domain.User{}, false
	}
	return user, ok
}

func (s *Store) SaveUser(user domain.User) error {
	return s.set(bucketSession, keyUser, user)
}

func (s *Store) DeleteUser() {
	s.delete(bucketSession, keyUser)
}

// === Favorites ===

func (s *Store) GetFavorites() ([]domain.Movie, bool) {
	var movies []domain.Movie
	ok := s.get(bucketFavorites, keyFavorites, &movies)
	return movies, ok
}

func (s *Store) SaveFavorites(movies []domain.Movie) error {
	return s.set(bucketFavorites, keyFavorites, movies)
}

// === View state ===

func (s *Store) GetLastSearch() (string, bool) {
	var query string
	ok := s.get(bucketState, keyLastSearch, &query)
	return query, ok && query != ""
}

func (s *Store) SaveLastSearch(query string) error {
	return s.set(bucketState, keyLastSearch, query)
}

func (s *Store) DeleteLastSearch() {
	s.delete(bucketState, keyLastSearch)
}
