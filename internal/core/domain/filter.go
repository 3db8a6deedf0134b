package domain

import (
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
)

// SkipFilter decides which translation units are excluded by path.
type SkipFilter struct {
	baseDir  string
	patterns []*regexp.Regexp
}

// NewSkipFilter compiles patterns. Each pattern only matches at the start of
// a path relative to baseDir.
func NewSkipFilter(baseDir string, patterns []string) (*SkipFilter, error) {
	f := &SkipFilter{
		baseDir:  baseDir,
		patterns: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")")
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidSkipPattern, err.Error()), "pattern", p)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Empty reports whether the filter has no patterns and therefore skips nothing.
func (f *SkipFilter) Empty() bool {
	return f == nil || len(f.patterns) == 0
}

// Skip reports whether realpath matches one of the patterns.
// Paths outside the base directory keep their leading "..".
func (f *SkipFilter) Skip(realpath string) (bool, error) {
	if f.Empty() {
		return false, nil
	}

	rel, err := filepath.Rel(f.baseDir, realpath)
	if err != nil {
		return false, zerr.With(zerr.Wrap(ErrPathResolutionFailed, err.Error()), "path", realpath)
	}
	rel = filepath.ToSlash(rel)

	for _, re := range f.patterns {
		if re.MatchString(rel) {
			return true, nil
		}
	}
	return false, nil
}
