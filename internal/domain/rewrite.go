package domain

import "strings"

// RewriteDocument splices resolved paths into the document content.
// refs and resolutions run in parallel and must come from ExtractReferences
// and Resolver.Resolve over this exact content. Only the path span of each
// resolved reference changes; alt text, titles, and attributes survive
// untouched. When nothing resolves, the original string is returned and the
// replacement count is zero, so callers can skip the write entirely.
func RewriteDocument(content string, refs []LinkReference, resolutions []Resolution) (string, int) {
	replaced := 0
	var b strings.Builder
	last := 0

	for i, ref := range refs {
		if i >= len(resolutions) {
			break
		}
		res := resolutions[i]
		if res.Kind != ResolutionResolved || res.NewPath == ref.RawPath {
			continue
		}
		b.WriteString(content[last:ref.Start])
		b.WriteString(res.NewPath)
		last = ref.End
		replaced++
	}

	if replaced == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), replaced
}
