// Package store defines the data access interfaces for the application's
// entities along with the sentinel errors implementations must return.
// The only implementation in this repository is the in-memory store in
// the memstore subpackage; all data lives for the process lifetime only.
package store
