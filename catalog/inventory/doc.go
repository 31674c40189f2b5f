// Package inventory implements a catalog.Source backed by the published
// asset-inventory JSON document. The document can be read from a local
// file, fetched over HTTP, or both: when a local path is configured it
// is tried first and the remote URL serves as fallback.
package inventory
