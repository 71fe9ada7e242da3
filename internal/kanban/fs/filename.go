package fs

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var underscoreRun = regexp.MustCompile(`_+`)

// Slugify turns a task title into a detail file base name:
// "Fix the Login-Bug!" -> "fix_the_login_bug"
func Slugify(title string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '-' || r == '_':
			return '_'
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		}
		return -1
	}, title)

	s = strings.Trim(underscoreRun.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "task"
	}
	return s
}

// UniqueFilename returns base.md, or base_2.md, base_3.md, ... if taken in dir.
// currentFile counts as free so a file can keep its own name.
func UniqueFilename(base, dir, currentFile string) string {
	for i := 1; ; i++ {
		candidate := base + ".md"
		if i > 1 {
			candidate = base + "_" + strconv.Itoa(i) + ".md"
		}
		if candidate == currentFile || !fileExists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}
