// Package store loads share documents from the filesystem.
package store
