package regulations

import "github.com/privacykit-dev/privacykit/internal/domain"

// Registry holds the set of requirement mappers available to a run. It is
// built once and never mutated afterwards, so it is safe for concurrent use.
type Registry struct {
	modules map[domain.Jurisdiction]domain.RegulationModule
	order   []domain.Jurisdiction
}

// NewRegistry returns a registry loaded with every built-in regulation
// module.
func NewRegistry() *Registry {
	return newRegistry(
		NewPIPEDA(),
		NewQuebecLaw25(),
		NewAlbertaPIPA(),
		NewBCPIPA(),
		NewGDPR(),
		NewCCPA(),
		NewCPRA(),
	)
}

func newRegistry(mods ...domain.RegulationModule) *Registry {
	r := &Registry{modules: make(map[domain.Jurisdiction]domain.RegulationModule, len(mods))}
	for _, m := range mods {
		if _, dup := r.modules[m.ID()]; dup {
			continue
		}
		r.modules[m.ID()] = m
		r.order = append(r.order, m.ID())
	}
	return r
}

// Module returns the mapper registered for the jurisdiction, if any.
func (r *Registry) Module(j domain.Jurisdiction) (domain.RegulationModule, bool) {
	m, ok := r.modules[j]
	return m, ok
}

// IsSupported reports whether a mapper is registered for the jurisdiction.
func (r *Registry) IsSupported(j domain.Jurisdiction) bool {
	_, ok := r.modules[j]
	return ok
}

// Supported lists the registered jurisdictions in registration order.
func (r *Registry) Supported() []domain.Jurisdiction {
	out := make([]domain.Jurisdiction, len(r.order))
	copy(out, r.order)
	return out
}
