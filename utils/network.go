package utils

import (
	"path/filepath"
	"strings"
)

// IsNetworkDrive detects if a path is on a network-mounted drive.
// Renames there are not guaranteed to be atomic, so callers warn about it.
func IsNetworkDrive(path string) bool {
	// Check Windows UNC paths first, before converting to absolute path
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	networkPrefixes := []string{
		"/mnt/",     // Linux NFS/SMB mounts
		"/media/",   // Linux removable/network media
		"/Volumes/", // macOS network volumes
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	lowerPath := strings.ToLower(absPath)
	for _, indicator := range []string{"nfs", "cifs", "smb", "webdav", "sftp"} {
		if strings.Contains(lowerPath, indicator) {
			return true
		}
	}

	return false
}
