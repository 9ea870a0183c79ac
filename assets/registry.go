// Package assets loads the game's images in the background and answers
// "is it loaded, and what are its pixels" without ever blocking a frame.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// loadWorkers bounds how many images decode at once.
const loadWorkers = 4

type entry struct {
	Asset
	img     image.Image
	loaded  bool
	loading bool
}

// Registry is safe for concurrent use: loaders write from goroutines while
// the frame thread reads.
type Registry struct {
	fsys fs.FS

	mu      sync.RWMutex
	entries map[string]*entry
	order   []string
	rng     *rand.Rand
}

// NewRegistry creates a registry over fsys. A nil manifest uses DefaultManifest;
// a nil rng gets a time-seeded source.
func NewRegistry(fsys fs.FS, manifest []Asset, rng *rand.Rand) *Registry {
	if manifest == nil {
		manifest = DefaultManifest
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xa55e7))
	}
	r := &Registry{
		fsys:    fsys,
		entries: make(map[string]*entry, len(manifest)),
		rng:     rng,
	}
	for _, a := range manifest {
		if _, dup := r.entries[a.Name]; !dup {
			r.order = append(r.order, a.Name)
		}
		r.entries[a.Name] = &entry{Asset: a}
	}
	return r
}

// LoadAll starts loading every asset not yet loaded and returns a channel
// closed once all of them have settled. Failed assets stay unloaded and are
// logged; callers fall back to placeholder rendering.
func (r *Registry) LoadAll() <-chan struct{} {
	done := make(chan struct{})

	r.mu.Lock()
	var pending []*entry
	for _, name := range r.order {
		e := r.entries[name]
		if e.loaded || e.loading {
			continue
		}
		e.loading = true
		pending = append(pending, e)
	}
	r.mu.Unlock()

	go func() {
		defer close(done)
		var g errgroup.Group
		g.SetLimit(loadWorkers)
		for _, e := range pending {
			g.Go(func() error {
				img, err := r.decode(e.Path)
				r.mu.Lock()
				e.loading = false
				if err == nil {
					e.img = img
					e.loaded = true
				}
				r.mu.Unlock()
				if err != nil {
					log.Printf("Warning: asset %q not loaded: %v", e.Name, err)
				}
				return nil
			})
		}
		_ = g.Wait()
	}()
	return done
}

func (r *Registry) decode(path string) (image.Image, error) {
	if r.fsys == nil {
		return nil, fmt.Errorf("no asset file system")
	}
	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Get returns the pixels of a loaded asset.
func (r *Registry) Get(name string) (image.Image, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok || !e.loaded {
		return nil, false
	}
	return e.img, true
}

// PickRandom returns a uniformly chosen asset name of the category, loaded or
// not, or "" if the manifest has none.
func (r *Registry) PickRandom(c Category) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	pick := ""
	for _, name := range r.order {
		if r.entries[name].Category != c {
			continue
		}
		n++
		// Reservoir sampling keeps the choice uniform in one pass.
		if r.rng.IntN(n) == 0 {
			pick = name
		}
	}
	return pick
}

// Names returns the manifest names of a category in manifest order.
func (r *Registry) Names(c Category) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for _, name := range r.order {
		if r.entries[name].Category == c {
			names = append(names, name)
		}
	}
	return names
}

// LoadedCount reports how many assets are ready.
func (r *Registry) LoadedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.entries {
		if e.loaded {
			n++
		}
	}
	return n
}

// TotalCount reports the manifest size.
func (r *Registry) TotalCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
