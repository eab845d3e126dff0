// Package sqliteexternal provides optional external SQLite drivers.
//
// This package is part of the main github.com/masterotaku487-arch/Transformar
// module and provides a CGO-based SQLite driver for installations where scan
// cache performance matters.
//
// # CGO SQLite Driver
//
// To use the CGO driver (github.com/mattn/go-sqlite3):
//
//	import _ "github.com/masterotaku487-arch/Transformar/contrib/sqlite-external"
//
// Build with:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite
//
// # Default Pure Go Driver
//
// By default, Transformar uses a pure Go SQLite implementation that requires
// no CGO. See github.com/masterotaku487-arch/Transformar/internal/sqlite.
//
// # When to Use
//
// Use this package when:
//   - You convert large mod sets and the scan cache is hot
//   - You already have CGO in your build pipeline
//
// Use the default pure Go driver when:
//   - Portability is important
//   - Cross-compilation is required
//   - You want simpler deployment (single binary)
package sqliteexternal
