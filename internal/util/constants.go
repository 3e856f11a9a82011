package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// File upload constants. Uploads are capped at 25 MB and restricted to
// document and image formats.
const (
	MaxUploadSize = 25 * 1000 * 1000

	MimePDF         = "application/pdf"
	MimeImage       = "image/"
	MimeDoc         = "application/msword"
	MimeDocx        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeOctetStream = "application/octet-stream"
	MimeZip         = "application/zip" // docx containers sniff as zip
)

var (
	AllowedUploadExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"}
)
