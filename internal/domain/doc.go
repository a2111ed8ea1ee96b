// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (documents, points, results) and contracts only.
package domain
