// Package modkit provides module wiring and core deps
package modkit

import "chrozone/internal/modkit/module"

// Module is the common surface for API modules that mount routes and expose ports
type Module = module.Module
