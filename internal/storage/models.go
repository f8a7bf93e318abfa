package storage

import "time"

// LoadRecord is a successfully loaded token document.
type LoadRecord struct {
	ID        string    // UUID of the load
	Source    string    // URL the document was fetched from
	RootPath  string    // Envelope path of the icon tree inside Document
	IconCount int       // Number of icons indexed from the document
	Document  []byte    // Raw token document (empty in List results)
	LoadedAt  time.Time // When the load completed
}
