// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/stubconv/pkg/types"
)

// Section names recognized in a stub file. Any other section is tracked
// for its boundary but its contents are ignored.
const (
	sectionApplication = "application"
	sectionConfigFiles = "configuration_files"
	sectionXDGFiles    = "xdg_configuration_files"
)

// ParseFile reads one stub file and parses it into a StubRecord. The
// record ID is the file's base name without extension. A read failure is
// a per-file failure: the caller reports it and moves on.
func ParseFile(path string) (types.StubRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.StubRecord{}, fmt.Errorf("reading stub %s: %w", path, err)
	}
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(id, string(data)), nil
}

// Parse scans the content of one stub file line by line, keeping a
// current-section cursor. It never fails: content with no recognizable
// section structure just yields an empty record, which the callers drop.
//
// Rules, applied to each whitespace-trimmed line:
//   - "[name]" moves the cursor to that section and emits nothing.
//   - blank lines and lines starting with "#" or ";" are ignored.
//   - inside [application], "name = value" sets the display name; other
//     keys are ignored.
//   - inside [configuration_files] and [xdg_configuration_files], every
//     remaining line is a path pattern, appended verbatim in file order.
func Parse(id, content string) types.StubRecord {
	rec := types.StubRecord{ID: id}

	section := ""
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case sectionApplication:
			key, value, found := strings.Cut(line, "=")
			if found && strings.TrimSpace(key) == "name" {
				rec.Name = strings.TrimSpace(value)
			}
		case sectionConfigFiles:
			if !strings.HasPrefix(line, "[") {
				rec.Paths = append(rec.Paths, line)
			}
		case sectionXDGFiles:
			if !strings.HasPrefix(line, "[") {
				rec.XDGPaths = append(rec.XDGPaths, line)
			}
		}
	}

	return rec
}
