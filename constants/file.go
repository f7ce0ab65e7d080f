package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the document/image/office extensions the batch
// enumerator accepts. Anything else in the input directory is ignored.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
	"tif":  {},
	"gif":  {},
	"bmp":  {},
	"doc":  {},
	"docx": {},
	"xls":  {},
	"xlsx": {},
	"ppt":  {},
	"pptx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsSupportedExt reports whether a file extension is on the allow-list.
func IsSupportedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// DocumentStem returns the base filename without its extension. It doubles
// as the per-document output subdirectory name and the cache lookup key.
func DocumentStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
