// Package cite turns opaque citation filenames into displayable links.
//
// The generation API reports citations as bare filenames. Some of those are
// literal document names, some encode a web address. Format applies a
// layered heuristic to reconstruct a clickable URL when one looks
// recoverable; a wrong guess still renders, it never fails.
package cite

import (
	"regexp"
	"strings"
)

// FormattedCitation is derived from a citation filename at render time and
// never persisted. URL is empty when no rule produced a link.
type FormattedCitation struct {
	DisplayName string
	URL         string
}

// urlSuffixes are extension and TLD tokens that mark a filename as
// URL-like when it ends with one of them.
var urlSuffixes = []string{
	"com", "org", "net", "io", "gov", "edu",
	"md", "pdf", "html", "htm", "php", "asp", "aspx",
}

// domainShape matches names built from three or more dot-separated labels
// ending in an alphabetic label of length two or more. Single-dot names
// like "notes.txt" are deliberately outside it; see the rule docs.
var domainShape = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)+\.[A-Za-z]{2,}$`)

// rules are evaluated in order; the first match wins. Keeping them as an
// explicit list keeps each heuristic auditable and testable on its own.
var rules = []func(string) (FormattedCitation, bool){
	encodedComURL,
	urlLike,
}

// Format derives a FormattedCitation from a raw citation filename. It is a
// pure function: same input, same output, no side effects.
func Format(filename string) FormattedCitation {
	for _, rule := range rules {
		if formatted, ok := rule(filename); ok {
			return formatted
		}
	}
	return FormattedCitation{DisplayName: filename}
}

// encodedComURL handles filenames like "example_com_some-page.md", which
// encode a .com domain and a path: the part before the first "_com_" is the
// domain with underscores stripped, the part after is the path with
// underscores turned into hyphens and the ".md" suffix removed.
func encodedComURL(filename string) (FormattedCitation, bool) {
	if !strings.HasSuffix(filename, ".md") || !strings.Contains(filename, "_com_") {
		return FormattedCitation{}, false
	}

	left, right, _ := strings.Cut(filename, "_com_")
	domain := strings.ReplaceAll(left, "_", "") + ".com"
	path := strings.TrimSuffix(strings.ReplaceAll(right, "_", "-"), ".md")

	return FormattedCitation{
		DisplayName: filename,
		URL:         "https://" + domain + "/" + path,
	}, true
}

// urlLike treats the filename as a URL when it ends in a known TLD or
// extension token, carries a scheme separator or "www.", or has a
// multi-label domain shape. The filename is prefixed with https:// unless
// it already names a scheme.
func urlLike(filename string) (FormattedCitation, bool) {
	lower := strings.ToLower(filename)

	matched := strings.Contains(filename, "://") ||
		strings.Contains(filename, "www.") ||
		domainShape.MatchString(filename)
	if !matched {
		for _, suffix := range urlSuffixes {
			if strings.HasSuffix(lower, "."+suffix) {
				matched = true
				break
			}
		}
	}
	if !matched {
		return FormattedCitation{}, false
	}

	url := filename
	if !strings.HasPrefix(filename, "http") {
		url = "https://" + filename
	}

	return FormattedCitation{DisplayName: filename, URL: url}, true
}
