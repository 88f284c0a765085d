package derive

import "optics-generator/internal/model"

// Request asks for the accessors of one target type.
type Request struct {
	Target model.TypeID
	Family Family
	// Container is the requesting container of a nested request; zero for
	// a shared one.
	Container model.TypeID
	Location  model.Location
}

// Shape returns how the accessors of r are emitted.
func (r Request) Shape() Shape {
	if r.Container.IsZero() {
		return ShapeShared
	}

	return ShapeNested
}

// RequestOption customizes a Request.
type RequestOption func(*Request)

// WithFamily selects the accessor family. The default is FamilyLens.
func WithFamily(f Family) RequestOption {
	return func(r *Request) {
		r.Family = f
	}
}

// WithContainer nests the accessors inside the container type.
func WithContainer(id model.TypeID) RequestOption {
	return func(r *Request) {
		r.Container = id
	}
}

// WithLocation attributes diagnostics for the request to loc.
func WithLocation(loc model.Location) RequestOption {
	return func(r *Request) {
		r.Location = loc
	}
}

// Registry collects requests in registration order.
type Registry struct {
	requests []Request
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Request registers target and returns the registry for chaining.
func (r *Registry) Request(target model.TypeID, opts ...RequestOption) *Registry {
	req := Request{Target: target}
	for _, opt := range opts {
		opt(&req)
	}

	r.requests = append(r.requests, req)

	return r
}

// Requests returns the registered requests.
func (r *Registry) Requests() []Request {
	return r.requests
}

// Len returns the number of registered requests.
func (r *Registry) Len() int {
	return len(r.requests)
}
