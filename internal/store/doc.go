// Package store provides file-based persistence for graph documents.
//
// Documents are serialised as indented JSON under <root>/graphs, one file per
// name, and written atomically. A small manifest next to them records each
// document's fingerprint and save time. All methods are concurrency-safe via
// internal locking.
package store
