package entities

import "path/filepath"

// ManifestPath is the absolute path of one build manifest (CMakeLists.txt).
type ManifestPath string

// Dir returns the directory owning the manifest.
func (p ManifestPath) Dir() string {
	return filepath.Dir(string(p))
}

func (p ManifestPath) String() string {
	return string(p)
}

// SourceFileRef is a candidate source file, relative to its manifest's
// directory and always rendered with forward slashes.
type SourceFileRef string

func (r SourceFileRef) String() string {
	return string(r)
}

// ManifestContent is the raw text of a manifest. It is never mutated after
// load, so it can be shared by concurrent reference checks.
type ManifestContent string
