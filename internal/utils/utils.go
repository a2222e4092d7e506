package utils

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// GenerateReferenceNo builds the human-readable tracking number handed to a
// member at submission: "BR-" followed by the last 8 digits of the submission
// instant in epoch milliseconds. Display-only, never a primary key.
func GenerateReferenceNo(at time.Time) string {
	ms := at.UnixMilli()
	return fmt.Sprintf("BR-%08d", ms%100000000)
}

// DocumentKey builds the blob storage key for an uploaded availment document:
// {collection}/{ownerKey}/{token}_{fileName}. The token is request-scoped so
// files from distinct submissions never collide.
func DocumentKey(collection, ownerKey, token, fileName string) string {
	return path.Join(collection, ownerKey, fmt.Sprintf("%s_%s", token, SanitizeFileName(fileName)))
}

// SanitizeFileName strips path separators and whitespace from a user-supplied
// file name so it is safe inside an object key.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		return "file"
	}
	return name
}
