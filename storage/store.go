// Package storage holds meal images outside the database. Rows
// reference images by filename only.
package storage

// ImageStore saves, loads and removes uploaded meal images.
type ImageStore interface {
	Save(filename string, data []byte) error
	Load(filename string) ([]byte, error)
	// Remove deletes the named image. A missing file is not an error:
	// the row may outlive the file or vice versa.
	Remove(filename string) error
}
