// Package usage provides point-in-time resource usage snapshots for
// tenants: pet count, active user count, current-month message count,
// and storage bytes.
//
// The Provider interface is the seam between the entitlement engine and
// the resource domain. Three implementations ship with the package:
//
//   - NewCounterProvider: assembles a snapshot from per-resource
//     CounterFunc callbacks registered at startup
//   - NewPGProvider: PostgreSQL aggregates over a pgx pool
//   - NewStaticProvider: fixed snapshots for tests
//
// Failures are always surfaced as errors. A provider must never respond
// to a backend failure with a zero snapshot: downstream entitlement
// checks would read it as "no usage" and fail open.
package usage
