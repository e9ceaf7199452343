package entities

import (
	"slices"
	"sync"
)

// AbsenceEntry is one manifest directory with the files its manifest does
// not mention.
type AbsenceEntry struct {
	Dir   string
	Files []SourceFileRef
}

// AbsenceReport accumulates unreferenced candidates per manifest directory.
// It is safe for concurrent use; a single lock guards the whole structure.
type AbsenceReport struct {
	mu    sync.Mutex
	files map[string][]SourceFileRef
}

// NewAbsenceReport creates an empty report.
func NewAbsenceReport() *AbsenceReport {
	return &AbsenceReport{files: make(map[string][]SourceFileRef)}
}

// Add records ref as absent from the manifest living in dir.
func (it *AbsenceReport) Add(dir string, ref SourceFileRef) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.files[dir] = append(it.files[dir], ref)
}

// Files returns a sorted copy of the absent files recorded for dir.
func (it *AbsenceReport) Files(dir string) []SourceFileRef {
	it.mu.Lock()
	defer it.mu.Unlock()

	files := slices.Clone(it.files[dir])
	slices.Sort(files)
	return files
}

// Len returns the total number of absent files across all directories.
func (it *AbsenceReport) Len() int {
	it.mu.Lock()
	defer it.mu.Unlock()

	total := 0
	for _, files := range it.files {
		total += len(files)
	}
	return total
}

// IsEmpty reports whether no absence was recorded.
func (it *AbsenceReport) IsEmpty() bool {
	return it.Len() == 0
}

// Entries returns a snapshot of the report: directories in lexical order,
// and files in lexical order inside each directory.
func (it *AbsenceReport) Entries() []AbsenceEntry {
	it.mu.Lock()
	defer it.mu.Unlock()

	dirs := make([]string, 0, len(it.files))
	for dir := range it.files {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	entries := make([]AbsenceEntry, 0, len(dirs))
	for _, dir := range dirs {
		files := slices.Clone(it.files[dir])
		slices.Sort(files)
		entries = append(entries, AbsenceEntry{Dir: dir, Files: files})
	}
	return entries
}
