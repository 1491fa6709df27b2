// Package module wires the interactions webhook into the API
package module

import (
	"net/http"

	modkit "chrozone/internal/modkit"
	"chrozone/internal/modkit/httpkit"
	str "chrozone/internal/platform/strings"

	"chrozone/internal/core/tzdb"
	"chrozone/internal/services/interactions/auth"
	"chrozone/internal/services/interactions/domain"
	ihttp "chrozone/internal/services/interactions/http"
	"chrozone/internal/services/interactions/service"
)

// Ports are the interactions module ports
type Ports struct {
	Responder domain.Responder
	Catalog   domain.Catalog
}

// Module implements the modkit.Module interface
type Module struct {
	deps     modkit.Deps
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
	ports    Ports
}

// New constructs the interactions module; the public key must already be validated
// Passing modkit.WithPorts(Ports{...}) replaces the default responder or catalog
func New(deps modkit.Deps, set Settings, opts ...modkit.Option) (modkit.Module, error) {
	key, err := auth.ParseKey(set.PubKey)
	if err != nil {
		return nil, err
	}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("interactions"),
		modkit.WithPrefix(set.WebhookPath),
	}, opts...)...)

	ports, _ := b.Ports.(Ports)
	if ports.Catalog == nil {
		ports.Catalog = tzdb.Default()
	}
	if ports.Responder == nil {
		ports.Responder = service.New(service.Options{
			Catalog: ports.Catalog,
			Limit:   set.AutocompleteLimit,
		})
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  ports,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ihttp.Register(r, ihttp.Deps{
			Verifier: auth.Verifier{
				Method: http.MethodPost,
				Path:   set.WebhookPath,
				Key:    key,
			},
			Responder: ports.Responder,
		})
		external(r)
	}

	deps.Logger("interactions").Info().
		Str("path", set.WebhookPath).
		Int("zones", len(ports.Catalog.Names())).
		Msg("interactions module ready")
	return m, nil
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "interactions") }

// Prefix is the webhook path
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
