package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// PathIndex maps basename keys to the vault-relative paths sharing that
// name. Documents and attachments live in separate namespaces, and each
// name is indexed both with and without its extension. Candidate sets are
// kept intact; ambiguity is decided at query time, not here.
//
// The index is built once after renaming and must stay frozen while
// resolution runs.
type PathIndex struct {
	docsByBase map[string][]string
	docsByStem map[string][]string
	attsByBase map[string][]string
	attsByStem map[string][]string

	documents   int
	attachments int
}

// IndexEntry is the persistable form of one index bucket.
type IndexEntry struct {
	Key        string   `json:"key"`
	Candidates []string `json:"candidate_paths"`
}

// DuplicateGroup lists the paths sharing one basename.
type DuplicateGroup struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
}

// BuildPathIndex indexes the given records. Callers pass the post-rename
// scan so the index mirrors the current filesystem exactly.
func BuildPathIndex(files []FileRecord) *PathIndex {
	ix := &PathIndex{
		docsByBase: make(map[string][]string),
		docsByStem: make(map[string][]string),
		attsByBase: make(map[string][]string),
		attsByStem: make(map[string][]string),
	}
	for _, f := range files {
		base := strings.ToLower(f.Base)
		stem := strings.TrimSuffix(base, strings.ToLower(filepath.Ext(f.Base)))
		if f.IsDocument() {
			ix.documents++
			ix.docsByBase[base] = append(ix.docsByBase[base], f.RelPath)
			ix.docsByStem[stem] = append(ix.docsByStem[stem], f.RelPath)
		} else {
			ix.attachments++
			ix.attsByBase[base] = append(ix.attsByBase[base], f.RelPath)
			ix.attsByStem[stem] = append(ix.attsByStem[stem], f.RelPath)
		}
	}
	for _, m := range []map[string][]string{ix.docsByBase, ix.docsByStem, ix.attsByBase, ix.attsByStem} {
		for _, paths := range m {
			sort.Strings(paths)
		}
	}
	return ix
}

// DocumentCount returns the number of indexed documents.
func (ix *PathIndex) DocumentCount() int { return ix.documents }

// AttachmentCount returns the number of indexed attachments.
func (ix *PathIndex) AttachmentCount() int { return ix.attachments }

// AttachmentCandidates returns the attachments matching a written basename.
// Names with an extension look up the with-extension key; bare names fall
// back to the stem key.
func (ix *PathIndex) AttachmentCandidates(base string) []string {
	key := strings.ToLower(base)
	if filepath.Ext(base) != "" {
		return ix.attsByBase[key]
	}
	return ix.attsByStem[key]
}

// DocumentCandidates returns the documents matching a written basename.
func (ix *PathIndex) DocumentCandidates(base string) []string {
	key := strings.ToLower(base)
	if filepath.Ext(base) != "" {
		return ix.docsByBase[key]
	}
	return ix.docsByStem[key]
}

// FuzzyDocumentCandidates returns every document whose stem contains the
// written stem or is contained by it. Both directions are deliberate; see
// the resolution policy notes.
func (ix *PathIndex) FuzzyDocumentCandidates(base string) []string {
	wstem := strings.ToLower(base)
	wstem = strings.TrimSuffix(wstem, strings.ToLower(filepath.Ext(base)))
	if wstem == "" {
		return nil
	}
	var out []string
	for stem, paths := range ix.docsByStem {
		if strings.Contains(stem, wstem) || strings.Contains(wstem, stem) {
			out = append(out, paths...)
		}
	}
	sort.Strings(out)
	return out
}

// DuplicateGroups returns every basename (with extension) shared by two or
// more files, documents and attachments alike, sorted by name.
func (ix *PathIndex) DuplicateGroups() []DuplicateGroup {
	merged := make(map[string][]string)
	for base, paths := range ix.docsByBase {
		merged[base] = append(merged[base], paths...)
	}
	for base, paths := range ix.attsByBase {
		merged[base] = append(merged[base], paths...)
	}

	var groups []DuplicateGroup
	for name, paths := range merged {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		groups = append(groups, DuplicateGroup{Name: name, Paths: paths})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

// Entries flattens the index for the recoverable on-disk record. Keys are
// prefixed with their namespace so the record stays human-inspectable.
func (ix *PathIndex) Entries() []IndexEntry {
	var entries []IndexEntry
	add := func(prefix string, m map[string][]string) {
		for key, paths := range m {
			entries = append(entries, IndexEntry{Key: prefix + key, Candidates: paths})
		}
	}
	add("document:", ix.docsByBase)
	add("attachment:", ix.attsByBase)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
