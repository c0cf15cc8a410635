package imagehost

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extensions objects may be stored under, with the content type each is
// served as. Anything else is stored as .dat so that a crafted name such as
// "x.html" or "x.svg" is never rendered by the browser from our origin.
var (
	imageTypes = map[string]string{
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"png":  "image/png",
		"gif":  "image/gif",
		"webp": "image/webp",
		"avif": "image/avif",
	}
	fileTypes = map[string]string{
		"pdf":  "application/pdf",
		"doc":  "application/msword",
		"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"odt":  "application/vnd.oasis.opendocument.text",
		"rtf":  "application/rtf",
		"txt":  "text/plain; charset=utf-8",
	}
)

const (
	fallbackExt  = "dat"
	fallbackType = "application/octet-stream"
)

// imageExt picks the stored extension and content type for an image. A
// decoded format wins over the file name.
func imageExt(filename, decoded string) (string, string) {
	if decoded == "jpeg" {
		decoded = "jpg"
	}
	if ct, ok := imageTypes[decoded]; ok {
		return decoded, ct
	}
	return allowed(imageTypes, extension(filename))
}

func fileExt(filename string) (string, string) {
	return allowed(fileTypes, extension(filename))
}

func allowed(types map[string]string, ext string) (string, string) {
	if ct, ok := types[ext]; ok {
		return ext, ct
	}
	return fallbackExt, fallbackType
}

// objectKey builds "<prefix>/<yyyy>/<mm>/<uuid>.<ext>". ext must come from
// imageExt or fileExt.
func objectKey(prefix, ext string, now time.Time) string {
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	return normalizeObjectKey(path.Join(prefix, now.Format("2006"), now.Format("01"), name))
}

func normalizeObjectKey(key string) string {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	key = strings.TrimPrefix(key, "/")
	for strings.Contains(key, "//") {
		key = strings.ReplaceAll(key, "//", "/")
	}
	return key
}
