package models

// StoredFile describes a successfully stored upload.
type StoredFile struct {
	// Key is the storage key the file was written under. It embeds the
	// sanitized original filename after a random prefix, so a second
	// upload with the same name never overwrites the first.
	Key string `json:"key"`

	// URL is the public retrieval URL of the file.
	URL string `json:"url"`
}
