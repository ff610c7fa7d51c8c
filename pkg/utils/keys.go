package utils

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	FolderImages = "images"
	FolderAudio  = "audio"
)

// imageExtensions is the extension set treated as images when the
// content type is absent or not an image type.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// extensionToContentType maps common media file extensions to their MIME
// types, used when a listing entry carries no content type.
var extensionToContentType = map[string]string{
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".gif":  "image/gif",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with an
// underscore, preserving the order of allowed characters.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// ClassifyFolder returns "images" when the content type or file extension
// indicates an image, and "audio" for everything else.
func ClassifyFolder(contentType, filename string) string {
	if strings.HasPrefix(contentType, "image/") {
		return FolderImages
	}
	if imageExtensions[strings.ToLower(path.Ext(filename))] {
		return FolderImages
	}

	return FolderAudio
}

// BuildObjectKey produces the storage key {folder}/{unixMillis}-{sanitized}.
func BuildObjectKey(contentType, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s", ClassifyFolder(contentType, filename), now.UnixMilli(), SanitizeFilename(filename))
}

// ContentTypeByExtension returns the MIME type for a file name based on its
// extension, or "application/octet-stream" when unknown.
func ContentTypeByExtension(filename string) string {
	if ct, ok := extensionToContentType[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}

	return "application/octet-stream"
}
