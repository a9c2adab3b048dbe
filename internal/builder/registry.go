// Package builder maps platforms to builder constructors.
package builder

import (
	"slices"
	"sync"

	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var errNilConstructor = zerr.New("builder constructor must not be nil")

// Constructor returns a fresh builder instance.
type Constructor func() ports.Builder

// Registry holds one constructor per platform. Registrations are append-only
// and stop once the registry is sealed.
type Registry struct {
	mu     sync.RWMutex
	ctors  map[domain.Platform]Constructor
	sealed bool
	once   sync.Once
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[domain.Platform]Constructor)}
}

// Register adds a constructor for platform.
func (r *Registry) Register(platform domain.Platform, ctor Constructor) error {
	if err := platform.Validate(); err != nil {
		return err
	}
	if ctor == nil {
		return zerr.With(zerr.Wrap(errNilConstructor, "cannot register builder"), "platform", platform.String())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return zerr.With(zerr.Wrap(domain.ErrRegistrySealed, "cannot register builder"), "platform", platform.String())
	}
	if _, ok := r.ctors[platform]; ok {
		return zerr.With(zerr.Wrap(domain.ErrBuilderAlreadyRegistered, "duplicate builder"), "platform", platform.String())
	}
	r.ctors[platform] = ctor
	return nil
}

// Seal closes the registry to further registrations. Calling it again is a no-op.
func (r *Registry) Seal() {
	r.once.Do(func() {
		r.mu.Lock()
		r.sealed = true
		r.mu.Unlock()
	})
}

// Sealed reports whether the registry accepts registrations.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Factory returns a new builder for platform. The first lookup seals the registry.
func (r *Registry) Factory(platform domain.Platform) (ports.Builder, error) {
	r.Seal()

	r.mu.RLock()
	ctor, ok := r.ctors[platform]
	r.mu.RUnlock()

	if !ok {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnknownPlatform, "no builder registered for "+platform.String()),
			"platform", platform.String())
	}
	return ctor(), nil
}

// Platforms returns the registered platforms in sorted order.
func (r *Registry) Platforms() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Platform, 0, len(r.ctors))
	for p := range r.ctors {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that builder packages register into.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a constructor to the default registry.
func Register(platform domain.Platform, ctor Constructor) error {
	return defaultRegistry.Register(platform, ctor)
}

// MustRegister is Register for use from init functions. It panics on error.
func MustRegister(platform domain.Platform, ctor Constructor) {
	if err := Register(platform, ctor); err != nil {
		panic(err)
	}
}

// Factory returns a new builder for platform from the default registry.
func Factory(platform domain.Platform) (ports.Builder, error) {
	return defaultRegistry.Factory(platform)
}
