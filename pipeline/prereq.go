package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions that disqualify a source file from compilation when a sibling
// with the same stem carries one. A same-stem raster image means the source
// is a generated artifact of, or a decoy for, a binary asset.
var disallowedSiblings = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
}

// CanCompile reports whether a source file is eligible for compilation.
// It lists siblings sharing the source's base name and rejects the file when
// any of them has a raster image extension. No process is spawned for an
// ineligible file.
func CanCompile(sourcePath string) (bool, error) {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("listing source directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(strings.TrimSuffix(name, ext), stem) {
			continue
		}
		if _, bad := disallowedSiblings[strings.ToLower(ext)]; bad {
			return false, nil
		}
	}

	return true, nil
}
