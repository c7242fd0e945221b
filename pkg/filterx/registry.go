package filterx

import "sync"

// Registry shares Services by name, e.g. one per report screen.
type Registry struct {
	mu       sync.Mutex
	services map[string]*Service
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]*Service)}
}

// GetOrCreate returns the Service stored under key, creating it from
// initial and opts on first use. Later calls ignore initial and opts.
func (r *Registry) GetOrCreate(key string, initial Filters, opts ...Option) *Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.services[key]; ok {
		return s
	}
	s := NewService(initial, opts...)
	r.services[key] = s
	return s
}

// Remove forgets the Service stored under key.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.services, key)
}

// Clear forgets every Service.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.services)
}

// Len returns the number of stored Services.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.services)
}
