package matcher

import (
	"regexp"
	"strings"
)

// Structural extraction patterns live here so checkers never embed pattern
// literals directly. All of them are line-anchored and case-insensitive.
var (
	fromRe        = regexp.MustCompile(`(?im)^\s*FROM\s+(.+)$`)
	userRe        = regexp.MustCompile(`(?im)^\s*USER\s+.+$`)
	healthcheckRe = regexp.MustCompile(`(?im)^\s*HEALTHCHECK\b`)
	kindRe        = regexp.MustCompile(`(?im)^\s*kind:\s*([A-Za-z0-9]+)\s*$`)
	imageLinkRe   = regexp.MustCompile(`(?i)!\[[^\]]*\]\([^)]+\.(png|jpg|jpeg|gif)\)`)
)

// DockerfileBaseImage extracts the image reference of the first FROM
// instruction. ok is false when the content has no FROM line.
func DockerfileBaseImage(content string) (image string, ok bool) {
	m := fromRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// UsesLatestTag reports whether an image reference pins no version: either
// an explicit :latest tag or a trailing bare colon.
func UsesLatestTag(image string) bool {
	return strings.Contains(strings.ToLower(image), ":latest") ||
		strings.HasSuffix(strings.TrimSpace(image), ":")
}

// HasUserInstruction reports whether a Dockerfile sets a USER.
func HasUserInstruction(content string) bool {
	return userRe.MatchString(content)
}

// HasHealthcheck reports whether a Dockerfile declares a HEALTHCHECK.
func HasHealthcheck(content string) bool {
	return healthcheckRe.MatchString(content)
}

// KindValues extracts every top-level `kind:` value from YAML content,
// lowercased. Malformed YAML simply yields fewer (or no) kinds.
func KindValues(content string) []string {
	var kinds []string
	for _, m := range kindRe.FindAllStringSubmatch(content, -1) {
		kinds = append(kinds, strings.ToLower(m[1]))
	}
	return kinds
}

// ReferencesImage reports whether Markdown content embeds at least one
// image link.
func ReferencesImage(content string) bool {
	return imageLinkRe.MatchString(content)
}
