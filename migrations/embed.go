package migrations

import "embed"

// Files holds the numbered forward-only .sql migrations compiled into the
// binary; internal/db applies them in order at startup.
//
//go:embed *.sql
var Files embed.FS
