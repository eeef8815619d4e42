// server/internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"zk-salon-api-server/internal/models"

	"go.uber.org/zap"
)

// Document is the whole persisted state: four record collections plus the
// singleton admin account. Every operation loads it in full, mutates it in
// memory and writes it back in full.
type Document struct {
	Employees []models.Employee `json:"employees"`
	Bookings  []models.Booking  `json:"bookings"`
	Services  []models.Service  `json:"services"`
	Products  []models.Product  `json:"products"`
	Admin     models.Admin      `json:"admin"`
}

// normalize back-fills collections missing from an older persisted file so
// the document always carries all four keys.
func (d *Document) normalize() {
	if d.Employees == nil {
		d.Employees = []models.Employee{}
	}
	if d.Bookings == nil {
		d.Bookings = []models.Booking{}
	}
	if d.Services == nil {
		d.Services = []models.Service{}
	}
	if d.Products == nil {
		d.Products = []models.Product{}
	}
}

// Store reads and writes the JSON document on local disk, optionally mirrored
// to a remote JSON store. The mutex serializes whole-document read/modify/write
// cycles within this process; last write still wins, there is no isolation
// between concurrent API requests beyond that.
type Store struct {
	mu     sync.Mutex
	path   string
	mirror *Mirror
}

func New(path string, mirror *Mirror) *Store {
	return &Store{path: path, mirror: mirror}
}

// Load returns the current document. When a mirror is configured its copy is
// preferred; any remote failure falls back to the local file silently. A
// missing local file yields a fresh default document.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Document, error) {
	if s.mirror != nil {
		if raw, err := s.mirror.Fetch(context.Background()); err == nil {
			doc := &Document{}
			if err := json.Unmarshal(raw, doc); err == nil {
				doc.normalize()
				return doc, nil
			}
			zap.S().Warnf("Remote store returned an unparseable document, falling back to local file")
		}
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := &Document{}
			doc.normalize()
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStorage, s.path, err)
	}
	doc.normalize()
	return doc, nil
}

// Save overwrites the local file with the full document. When a mirror is
// configured the same bytes are pushed to it best-effort: a failed push is
// logged and never fails the local save.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *Store) save(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	if s.mirror != nil {
		if err := s.mirror.Push(context.Background(), raw); err != nil {
			zap.S().Warnf("Failed to push document to remote store: %v", err)
		}
	}
	return nil
}

// Update runs fn over the freshly loaded document under the store lock and
// persists the result when fn reports a mutation. fn returning an error aborts
// without writing.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}
