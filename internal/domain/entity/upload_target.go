package entity

// UploadTarget is a pre-authorized direct upload destination. The URL is
// time-boxed; once it expires a fresh target must be requested.
type UploadTarget struct {
	UploadURL string
	Key       string
	PublicURL string
}
