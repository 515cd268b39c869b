// Package harness wraps a pipeline so tests can assemble and inspect it
// without deploying it inside the full production host.
//
// The wrapper does three jobs:
//
//  1. Attach processing components to named stages, creating stages on
//     demand (AddComponent).
//  2. Resolve and register document-spec metadata so stage components can
//     recognize document schemas by name at runtime (AddDocSpec,
//     DocSpecByName, DocSpecByType).
//  3. Expose optional transactional execution semantics and an enumerable
//     view over every configured component (EnableTransactions,
//     Components).
//
// Everything else - stage execution order, document I/O, schema
// compilation - belongs to external collaborators. The wrapper only
// orchestrates the object model in internal/pipeline and the loader in
// internal/docspec.
//
// A wrapper, its pipeline, and its lazily-created context live for the
// duration of one test scenario and must not be shared across scenarios
// running in parallel: there is no internal synchronization and no
// cross-instance isolation.
package harness
