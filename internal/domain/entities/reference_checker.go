package entities

import (
	"regexp"
	"sync"
)

// ReferenceChecker decides whether a manifest mentions a candidate file.
//
// The check is a textual heuristic, not a CMake parser: the path must appear
// literally with at least one space, tab, carriage return or newline on
// both sides. A path written as "(main.cpp)" or at the very end of the file
// is therefore reported as absent, and a path mentioned only inside a
// comment counts as present.
type ReferenceChecker struct {
	patterns sync.Map // SourceFileRef -> *regexp.Regexp
}

// NewReferenceChecker creates a checker with an empty pattern cache.
func NewReferenceChecker() *ReferenceChecker {
	return &ReferenceChecker{}
}

// IsReferenced reports whether ref occurs in content as a whitespace-bounded token.
func (it *ReferenceChecker) IsReferenced(content ManifestContent, ref SourceFileRef) bool {
	if ref == "" {
		return false
	}
	return it.pattern(ref).MatchString(string(content))
}

func (it *ReferenceChecker) pattern(ref SourceFileRef) *regexp.Regexp {
	if cached, ok := it.patterns.Load(ref); ok {
		return cached.(*regexp.Regexp)
	}
	compiled := regexp.MustCompile(`[ \t\r\n]+` + regexp.QuoteMeta(string(ref)) + `[ \t\r\n]+`)
	actual, _ := it.patterns.LoadOrStore(ref, compiled)
	return actual.(*regexp.Regexp)
}
