package matcher

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "matcher",
})

// MatchesGlob reports whether a relative path satisfies a shell-style glob.
// The pattern is applied to the full relative path and to the bare filename;
// matching either one counts. Name matching is case-insensitive so that
// "dockerfile" matches "Dockerfile". `*` does not cross path separators,
// `**` does. A pattern that fails to compile matches nothing.
func MatchesGlob(relPath, pattern string) bool {
	g, err := glob.Compile(strings.ToLower(pattern), '/')
	if err != nil {
		logger.WithError(err).WithField("pattern", pattern).Debug("unusable glob pattern")
		return false
	}
	lower := strings.ToLower(relPath)
	return g.Match(lower) || g.Match(path.Base(lower))
}

// MatchesAnyGlob reports whether relPath satisfies at least one pattern.
func MatchesAnyGlob(relPath string, patterns []string) bool {
	for _, p := range patterns {
		if MatchesGlob(relPath, p) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any needle occurs in text as a substring,
// case-insensitively.
func ContainsAny(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every needle occurs in text, case-insensitively.
func ContainsAll(text string, needles []string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if !strings.Contains(lower, strings.ToLower(n)) {
			return false
		}
	}
	return true
}
