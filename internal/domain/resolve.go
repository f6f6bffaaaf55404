package domain

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ResolutionKind is the outcome of resolving one reference.
type ResolutionKind int

const (
	// ResolutionCurrent: the written path already points at an existing
	// file. The reference is left byte-identical and counted nowhere.
	ResolutionCurrent ResolutionKind = iota
	// ResolutionResolved: exactly one candidate was found; the reference
	// will be rewritten to NewPath.
	ResolutionResolved
	// ResolutionUnresolved: no candidate matched.
	ResolutionUnresolved
	// ResolutionAmbiguous: two or more candidates matched; never guess.
	ResolutionAmbiguous
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionCurrent:
		return "current"
	case ResolutionResolved:
		return "resolved"
	case ResolutionUnresolved:
		return "unresolved"
	case ResolutionAmbiguous:
		return "ambiguous"
	}
	return "unknown"
}

// Resolution is the decision for a single LinkReference.
type Resolution struct {
	Kind       ResolutionKind
	NewPath    string   // document-relative, forward slashes; set when resolved
	Candidates []string // set when ambiguous
}

// Resolver resolves written references against a frozen PathIndex.
// It consults names and the index only, never file content.
type Resolver struct {
	root    string
	index   *PathIndex
	renames map[string]string
	exists  func(abs string) bool
}

// NewResolver builds a resolver for the vault rooted at root. exists may be
// nil, in which case os.Stat is used.
func NewResolver(root string, index *PathIndex, exists func(abs string) bool) *Resolver {
	if exists == nil {
		exists = func(abs string) bool {
			_, err := os.Stat(abs)
			return err == nil
		}
	}
	return &Resolver{root: root, index: index, exists: exists}
}

// UseRenameMap primes the resolver with this run's renames. A written
// path that still names a pre-rename location is repaired directly from
// the map, ahead of any basename matching.
func (r *Resolver) UseRenameMap(mappings []RenameMapping) {
	r.renames = make(map[string]string, len(mappings))
	for _, m := range mappings {
		r.renames[m.OriginalPath] = m.NewPath
	}
}

// Resolve decides what to do with one reference found in the document at
// docRel (vault-relative, forward slashes).
//
// A path that is external, empty, or already valid on disk is kept as-is.
// Attachment references resolve by exact basename match only; document
// references get an exact tier and then a two-sided containment fuzzy tier.
func (r *Resolver) Resolve(docRel string, ref LinkReference) Resolution {
	written := strings.TrimSpace(ref.RawPath)
	if written == "" || IsExternalPath(written) {
		return Resolution{Kind: ResolutionCurrent}
	}

	docDir := path.Dir(docRel)

	// Rename-map tier: the written path names a file renamed this run.
	// A vanished target falls through to basename matching.
	if newRel, ok := r.renames[path.Join(docDir, written)]; ok {
		if res := r.resolved(docDir, newRel); res.Kind == ResolutionResolved {
			return res
		}
	}

	if r.exists(r.abs(path.Join(docDir, written))) {
		return Resolution{Kind: ResolutionCurrent}
	}

	base := path.Base(written)
	ext := strings.ToLower(path.Ext(base))

	if IsDocumentExt(ext) {
		return r.resolveDocument(docDir, base)
	}
	if ext != "" {
		return r.resolveAttachment(docDir, base)
	}

	// Extensionless reference: attachments win when any exist; otherwise
	// treat it as a document reference.
	if len(r.index.AttachmentCandidates(base)) > 0 {
		return r.resolveAttachment(docDir, base)
	}
	return r.resolveDocument(docDir, base)
}

func (r *Resolver) resolveAttachment(docDir, base string) Resolution {
	candidates := r.index.AttachmentCandidates(base)
	switch len(candidates) {
	case 0:
		return Resolution{Kind: ResolutionUnresolved}
	case 1:
		return r.resolved(docDir, candidates[0])
	default:
		return Resolution{Kind: ResolutionAmbiguous, Candidates: candidates}
	}
}

func (r *Resolver) resolveDocument(docDir, base string) Resolution {
	exact := r.index.DocumentCandidates(base)
	if len(exact) == 1 {
		return r.resolved(docDir, exact[0])
	}

	// Zero or several exact hits: fall through to containment matching
	// across all documents, exact ties included.
	fuzzy := r.index.FuzzyDocumentCandidates(base)
	switch len(fuzzy) {
	case 0:
		return Resolution{Kind: ResolutionUnresolved}
	case 1:
		return r.resolved(docDir, fuzzy[0])
	default:
		return Resolution{Kind: ResolutionAmbiguous, Candidates: fuzzy}
	}
}

// resolved builds the document-relative path for a matched candidate,
// double-checking that the candidate is still on disk.
func (r *Resolver) resolved(docDir, candidateRel string) Resolution {
	if !r.exists(r.abs(candidateRel)) {
		return Resolution{Kind: ResolutionUnresolved}
	}
	rel, err := filepath.Rel(filepath.FromSlash(docDir), filepath.FromSlash(candidateRel))
	if err != nil {
		return Resolution{Kind: ResolutionUnresolved}
	}
	return Resolution{Kind: ResolutionResolved, NewPath: filepath.ToSlash(rel)}
}

func (r *Resolver) abs(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}
