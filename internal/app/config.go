package app

import "polyshare/internal/domain"

// Config holds runtime wiring options for building the app.
type Config struct {
	Source domain.ShareSource // optional; defaults to the file source
}
