// Package mongo provides MongoDB implementations of the repositories defined
// in internal/store. Records keep int64 identities, drawn from a counters
// collection, so the API looks the same whichever backend is configured.
package mongo
