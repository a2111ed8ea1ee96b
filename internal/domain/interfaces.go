package domain

// ShareSource supplies parsed share documents to the solver. The CLI uses
// a file-backed implementation; tests substitute in-memory ones.
type ShareSource interface {
	Load(path string) (Document, error)
}
