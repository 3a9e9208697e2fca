// Package pipeline is the batch converter. It discovers material folders
// under the root, mirrors each into the dump tree, normalizes the master
// image names, and regenerates every derived resolution bucket.
//
// Failures are handled in two tiers. A *fileops.Error from a copy, move or
// directory primitive aborts the whole run; any other error is scoped to
// the material being converted, which is logged and skipped.
//
// Files: discover.go (material listing),
// material.go (per-material conversion), runner.go (batch loop and
// summary), stats.go (counters).
package pipeline
