// Package api assembles the HTTP surface: the interactions webhook plus meta endpoints
package api

import (
	"net/http"

	"chrozone/internal/platform/config"
	perr "chrozone/internal/platform/errors"
	"chrozone/internal/platform/logger"
	phttp "chrozone/internal/platform/net/http"

	"chrozone/internal/modkit"
	"chrozone/internal/modkit/httpkit"
	"chrozone/internal/modkit/module"

	metamod "chrozone/internal/services/api/meta/module"
	interactionsmod "chrozone/internal/services/interactions/module"
)

// Options are the API options
type Options struct {
	Config   config.Conf
	Logger   *logger.Logger
	Settings interactionsmod.Settings
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: opt.Logger,
	}

	// construct interactions first so meta can report on its catalog
	interactions, err := interactionsmod.New(deps, opt.Settings)
	if err != nil {
		return err
	}
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Catalog: module.MustPortsOf[interactionsmod.Ports](interactions).Catalog,
	}))

	mods := []module.Module{meta, interactions}

	r.Use(httpkit.CommonStack(httpkit.StackOptions{Timeout: opt.Settings.Timeout})...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpkit.RespondError(w, req, perr.NotFoundf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpkit.RespondError(w, req, perr.MethodNotAllowedf("method %s not allowed", req.Method))
	})

	// liveness for load balancers, no auth and no body
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
	return nil
}
