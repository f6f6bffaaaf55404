package domain

import (
	"regexp"
	"sort"
	"strings"
)

// SyntaxKind identifies which reference syntax a link was written in.
// Each kind has its own extraction pattern; rewriting replaces only the
// path span, so the surrounding syntax survives verbatim.
type SyntaxKind int

const (
	SyntaxMarkdownImage SyntaxKind = iota // ![alt](path)
	SyntaxMarkdownLink                    // [text](path)
	SyntaxHTMLImgSrc                      // <img src="path">
	SyntaxHTMLImageHref                   // <image href="path">
)

func (k SyntaxKind) String() string {
	switch k {
	case SyntaxMarkdownImage:
		return "markdown_image"
	case SyntaxMarkdownLink:
		return "markdown_link"
	case SyntaxHTMLImgSrc:
		return "html_img"
	case SyntaxHTMLImageHref:
		return "html_image_href"
	}
	return "unknown"
}

// LinkReference is one path reference found in a document. Start and End
// delimit the path portion (byte offsets into the document content).
type LinkReference struct {
	Kind    SyntaxKind
	RawPath string
	Start   int
	End     int
}

var (
	// ![alt](body) and [text](body); body may carry <angles> and a title.
	mdLinkPattern = regexp.MustCompile(`(!?\[[^\]]*\]\()([^)]+)(\))`)
	// Path inside the markdown body: optional <, then the URL up to
	// whitespace or >, then the rest (title etc.).
	mdBodyPattern = regexp.MustCompile(`^(\s*<?)([^>\s]+)`)
	// <img ... src="..."> and <image ... href="...">, either quote style.
	htmlPattern = regexp.MustCompile(`(?i)(<(img|image)\b[^>]*?\s(src|href)\s*=\s*["'])([^"']+)(["'])`)
)

// ExtractReferences finds every supported reference in a document and
// returns them ordered by position. Results are ephemeral; they index into
// the exact content string passed in.
func ExtractReferences(content string) []LinkReference {
	var refs []LinkReference

	for _, m := range mdLinkPattern.FindAllStringSubmatchIndex(content, -1) {
		// m[2]:m[3] is the "![alt](" prefix, m[4]:m[5] the body.
		prefix := content[m[2]:m[3]]
		body := content[m[4]:m[5]]

		bm := mdBodyPattern.FindStringSubmatchIndex(body)
		if bm == nil {
			continue
		}
		start := m[4] + bm[4]
		end := m[4] + bm[5]

		kind := SyntaxMarkdownLink
		if strings.HasPrefix(prefix, "!") {
			kind = SyntaxMarkdownImage
		}
		refs = append(refs, LinkReference{
			Kind:    kind,
			RawPath: content[start:end],
			Start:   start,
			End:     end,
		})
	}

	for _, m := range htmlPattern.FindAllStringSubmatchIndex(content, -1) {
		attr := strings.ToLower(content[m[6]:m[7]])
		kind := SyntaxHTMLImgSrc
		if attr == "href" {
			kind = SyntaxHTMLImageHref
		}
		refs = append(refs, LinkReference{
			Kind:    kind,
			RawPath: content[m[8]:m[9]],
			Start:   m[8],
			End:     m[9],
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Start < refs[j].Start })
	return refs
}

var windowsDrivePattern = regexp.MustCompile(`^[a-zA-Z]:[\\/]`)

var externalSchemes = []string{"http://", "https://", "ftp://", "mailto:", "tel:", "data:"}

// IsExternalPath reports whether a written path points outside the vault:
// URLs, fragments, protocol-relative, absolute, or drive-letter paths.
// Such references are never rewritten.
func IsExternalPath(path string) bool {
	lower := strings.ToLower(path)
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return strings.HasPrefix(path, "//") ||
		strings.HasPrefix(path, "#") ||
		strings.HasPrefix(path, "/") ||
		strings.HasPrefix(path, `\`) ||
		windowsDrivePattern.MatchString(path)
}
