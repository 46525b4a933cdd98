// Package resource resolves configured directory scan specs into the set of
// result files to publish.
package resource

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Spec is one scan spec: a base directory with Ant-style include and exclude
// glob patterns. Empty includes match everything.
type Spec struct {
	Directory string
	Includes  []string
	Excludes  []string
}

// defaultExcludes are always applied in addition to the spec's own excludes:
// version-control metadata and common editor/OS junk files.
var defaultExcludes = []string{
	"**/.git/**", "**/.git",
	"**/.svn/**", "**/.svn",
	"**/.hg/**", "**/.hg",
	"**/.bzr/**", "**/.bzr",
	"**/CVS/**", "**/CVS",
	"**/*~", "**/#*#", "**/.#*", "**/%*%", "**/._*",
	"**/.DS_Store", "**/Thumbs.db",
}

// matchAll is the include pattern used when a spec declares none.
var matchAll = []string{"**"}

// Locate resolves the given specs into a deduplicated, order-preserving list
// of file paths. Order is spec order, then scan order within a spec.
// Duplicates (the same canonical path matched by several specs) collapse to
// their first occurrence. Missing directories and zero matches are not
// errors; they simply contribute nothing.
func Locate(log *slog.Logger, specs []Spec) []string {
	seen := make(map[string]bool)
	var files []string

	for _, spec := range specs {
		log.Debug("scanning resource directory",
			"directory", spec.Directory, "includes", spec.Includes, "excludes", spec.Excludes)

		for _, rel := range scan(spec.Directory) {
			if !matchesAny(includesOf(spec), rel) || matchesAny(spec.Excludes, rel) || matchesAny(defaultExcludes, rel) {
				continue
			}
			path := filepath.Join(spec.Directory, filepath.FromSlash(rel))
			canonical := canonicalPath(path)
			if seen[canonical] {
				continue
			}
			seen[canonical] = true
			files = append(files, canonical)
		}
	}

	return files
}

func includesOf(spec Spec) []string {
	if len(spec.Includes) == 0 {
		return matchAll
	}
	return spec.Includes
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// scan walks the directory tree rooted at dir, following symbolic links, and
// returns slash-separated paths of all regular files relative to dir in
// deterministic lexical order. Unreadable directories are skipped.
func scan(dir string) []string {
	var files []string
	visited := make(map[string]bool) // canonical dirs, guards symlink cycles
	walkDir(dir, "", visited, &files)
	return files
}

func walkDir(dir, rel string, visited map[string]bool, files *[]string) {
	canonical := canonicalPath(dir)
	if visited[canonical] {
		return
	}
	visited[canonical] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		childPath := filepath.Join(dir, name)
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}

		info := entry.Type()
		if info&os.ModeSymlink != 0 {
			// Follow the link to decide whether it is a file or directory.
			resolved, err := os.Stat(childPath)
			if err != nil {
				continue
			}
			if resolved.IsDir() {
				walkDir(childPath, childRel, visited, files)
			} else if resolved.Mode().IsRegular() {
				*files = append(*files, childRel)
			}
			continue
		}

		if entry.IsDir() {
			walkDir(childPath, childRel, visited, files)
		} else if info.IsRegular() {
			*files = append(*files, childRel)
		}
	}
}

// canonicalPath resolves symlinks and relative segments so duplicates can be
// detected across specs. Falls back to the absolute path when resolution
// fails (e.g. the file vanished mid-scan).
func canonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
