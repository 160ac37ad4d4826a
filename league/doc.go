// Package league provides the core multi-year league simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the yearly cycle:
//   - state.go: the immutable LeagueState snapshot every stage consumes and returns
//   - history.go: the orchestrator that chains schedule, season, playoffs, and offseason
//   - offseason.go: the eight-stage offseason pipeline and its fixed ordering
//
// # Architecture
//
// Everything is synchronous, single-threaded, and CPU-bound. A stage
// never mutates the snapshot it is handed: it clones the maps it
// rewrites and returns a new value, so no state is shared across stage
// boundaries. The only shared resource is the PartitionedRNG (rng.go),
// which hands each subsystem its own deterministically derived source;
// identical SimulationKeys produce identical histories.
//
// Fallback discipline: schedule assignment and draft-order computation
// both follow a compute-primary-then-reconcile shape. The reconcile
// step owns the completeness invariant (17 games plus one bye, 32
// unique draft slots) and is never skipped, so neither path can fail a
// run.
//
// # Collaborators
//
// Player, prospect, contract, and coach generation are black-box
// contracts (generators.go); the default implementations live in
// league/gen. The engine requires only structurally valid output.
package league
