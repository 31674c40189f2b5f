// Package channel adapts one canonical resolution result into
// channel-specific views: a multi-item listing and a single best-match
// deep link.
//
// Adapters apply presentation concerns only. The product boundary and
// all filtering happened upstream in resolve; re-deriving either here
// would break cross-channel consistency, which is the one invariant
// this package exists to protect.
package channel
