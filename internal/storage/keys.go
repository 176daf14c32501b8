package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// ContributionKey is where an uploaded contribution file lives:
// contributions/{contributorID}/{unixMillis}_{fileName}.
func ContributionKey(contributorID, fileName string, at time.Time) string {
	return fmt.Sprintf("contributions/%s/%d_%s", contributorID, at.UnixMilli(), cleanFileName(fileName))
}

// MaterialKey is where a file added directly by an admin lives.
func MaterialKey(fileName string, at time.Time) string {
	return fmt.Sprintf("materials/%d_%s", at.UnixMilli(), cleanFileName(fileName))
}

func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
