package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedType rejects uploads outside the allowed document formats.
var ErrUnsupportedType = errors.New("unsupported file type: only PDF, Word and plain text documents are allowed")

const maxKeywords = 200

var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

// AllowedContentType reports whether an upload content type is accepted.
func AllowedContentType(contentType string) bool {
	// Strip parameters like "; charset=utf-8".
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	_, ok := allowedContentTypes[strings.TrimSpace(strings.ToLower(contentType))]
	return ok
}

// ExtractText pulls plain text out of a supported resume document.
func ExtractText(contentType string, data []byte) (string, error) {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case "application/pdf":
		return extractTextFromPDF(data)
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractTextFromDocx(data)
	case "text/plain":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedType
	}
}

var (
	reToken  = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}+#./-]*`)
	reDigits = regexp.MustCompile(`^[\p{N}./-]+$`)
)

// ExtractKeywords turns resume text into a deduplicated keyword list:
// lowercase tokens minus stopwords, short words and bare numbers, in order
// of first appearance, capped at maxKeywords. Never returns nil.
func ExtractKeywords(text string) []string {
	keywords := []string{}
	seen := map[string]struct{}{}
	for _, tok := range reToken.FindAllString(strings.ToLower(text), -1) {
		tok = strings.Trim(tok, "./-")
		if len(tok) < 2 || reDigits.MatchString(tok) {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// Short English stopword list; extraction quality beyond this is out of scope.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "my": {}, "of": {}, "on": {}, "or": {}, "our": {},
	"that": {}, "the": {}, "this": {}, "to": {}, "was": {}, "were": {},
	"with": {}, "we": {}, "you": {}, "your": {}, "i": {}, "me": {},
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

// .doc is accepted for upload but only the OOXML container is parseable; the
// legacy binary format fails extraction and the resume lands in StatusFailed.
func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
