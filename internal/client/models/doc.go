// Package models defines client-side data models mirrored from the REST
// backend. The backend owns every record; the client keeps cached copies
// that may be stale and are replaced wholesale on each response.
package models
