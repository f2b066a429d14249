// Package reading holds the pure derivation rules of the tracker: item status,
// progress percentages and per-day activity buckets.
//
// Nothing here touches storage. Every function is a deterministic function of
// the stored fields it receives, so derived values are recomputed on each read
// instead of being persisted next to the data they are derived from.
package reading
