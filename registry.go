package bitcol

import (
	"fmt"
	"sync"
)

// Traits describes the element type behind a datatype tag.
type Traits struct {
	// Name is the stable, human-readable name of the element type.
	Name string
	// Bits is the width of the element type.
	Bits int
	// Signed reports whether the element type carries a sign.
	Signed bool
}

// ConvertFunc converts a tagged value into a bitmap.
type ConvertFunc func(v any) (*Bitmap, error)

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// Logger receives debug-level registration events. Defaults to a noop
	// logger.
	Logger *Logger
}

// Registry associates datatype tags with element traits and conversion
// functions. It replaces an ambient process-wide registration table:
// construct one at startup and hand it to the components that need datatype
// dispatch.
//
// A new Registry already knows DatatypeUint32, backed by ToBitmap. It is safe
// for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	traits     map[Datatype]Traits
	converters map[Datatype]ConvertFunc
	logger     *Logger
}

// NewRegistry creates a Registry preloaded with the built-in uint32 datatype.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{
		Logger: NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := &Registry{
		traits:     make(map[Datatype]Traits),
		converters: make(map[Datatype]ConvertFunc),
		logger:     opts.Logger,
	}

	r.traits[DatatypeUint32] = Traits{Name: "uint32", Bits: 32, Signed: false}
	r.converters[DatatypeUint32] = ToBitmap

	return r
}

// Register associates a datatype tag with its traits and converter.
// Registering an already-known tag fails with ErrDatatypeRegistered.
func (r *Registry) Register(dt Datatype, tr Traits, fn ConvertFunc) error {
	if dt == DatatypeInvalid {
		return fmt.Errorf("%w: cannot register the invalid datatype", ErrUnknownDatatype)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.traits[dt]; ok {
		return fmt.Errorf("%w: %d (%s)", ErrDatatypeRegistered, dt, tr.Name)
	}

	r.traits[dt] = tr
	if fn != nil {
		r.converters[dt] = fn
	}

	r.logger.Debug("datatype registered",
		"datatype", dt,
		"name", tr.Name,
		"bits", tr.Bits,
		"signed", tr.Signed,
	)

	return nil
}

// Traits returns the traits registered for the tag.
func (r *Registry) Traits(dt Datatype) (Traits, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tr, ok := r.traits[dt]
	return tr, ok
}

// Convert converts a value tagged with dt into a bitmap using the registered
// converter. An unregistered tag fails with ErrUnknownDatatype.
func (r *Registry) Convert(dt Datatype, v any) (*Bitmap, error) {
	r.mu.RLock()
	fn, ok := r.converters[dt]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDatatype, dt)
	}
	return fn(v)
}
