package evidence

import (
	"strings"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/fstree"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/matcher"
)

// Finder exposes the three query shapes every category checker is built
// from: file-by-name existence, file-by-glob existence, and text search
// inside glob-selected files. It only ever reads the Index snapshot taken
// at the start of the run, so all checkers see an identical view.
type Finder struct {
	idx *fstree.Index
}

func NewFinder(idx *fstree.Index) *Finder {
	return &Finder{idx: idx}
}

// Index returns the underlying snapshot.
func (f *Finder) Index() *fstree.Index {
	return f.idx
}

// FilesNamed returns every file whose bare name equals one of names,
// case-insensitively, in relative-path order.
func (f *Finder) FilesNamed(names ...string) []fstree.File {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = true
	}
	var found []fstree.File
	for _, file := range f.idx.Files() {
		if wanted[strings.ToLower(file.Name)] {
			found = append(found, file)
		}
	}
	return found
}

// HasFileNamed reports whether any file bears one of the given names.
func (f *Finder) HasFileNamed(names ...string) bool {
	return len(f.FilesNamed(names...)) > 0
}

// FilesMatching returns every file whose relative path (or bare name)
// matches at least one glob, in relative-path order.
func (f *Finder) FilesMatching(globs ...string) []fstree.File {
	var found []fstree.File
	for _, file := range f.idx.Files() {
		if matcher.MatchesAnyGlob(file.RelPath, globs) {
			found = append(found, file)
		}
	}
	return found
}

// HasAnyFile reports whether any file matches one of the globs.
func (f *Finder) HasAnyFile(globs ...string) bool {
	for _, file := range f.idx.Files() {
		if matcher.MatchesAnyGlob(file.RelPath, globs) {
			return true
		}
	}
	return false
}

// TextInFiles reports whether any file matching the globs contains one of
// the needles, case-insensitively. Unreadable files contribute empty
// content and therefore no evidence.
func (f *Finder) TextInFiles(needles []string, globs []string) bool {
	for _, file := range f.idx.Files() {
		if !matcher.MatchesAnyGlob(file.RelPath, globs) {
			continue
		}
		if matcher.ContainsAny(f.idx.ReadText(file), needles) {
			return true
		}
	}
	return false
}

// CombinedText concatenates the decoded content of the given files,
// newline-separated, mirroring how pipeline and IaC signals are matched
// against the whole corpus at once.
func (f *Finder) CombinedText(files []fstree.File) string {
	var sb strings.Builder
	for i, file := range files {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.idx.ReadText(file))
	}
	return sb.String()
}

// ReadText reads one file best-effort, empty on failure.
func (f *Finder) ReadText(file fstree.File) string {
	return f.idx.ReadText(file)
}
