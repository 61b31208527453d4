package entity

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// UnknownField is the placeholder for metadata the document does not declare.
// Missing fields degrade to this instead of failing a listing.
const UnknownField = "Unknown"

// Fields is the typed metadata record extracted from a document.
// The rest of the system never touches raw document text.
type Fields struct {
	Title   string
	Status  string
	Updated string
}

var (
	statusLine  = regexp.MustCompile(`(?i)^\s*[-*]?\s*\*{0,2}status\*{0,2}\s*[:：]\s*(.+?)\s*$`)
	updatedLine = regexp.MustCompile(`(?i)^\s*[-*]?\s*\*{0,2}(?:updated|last updated)\*{0,2}\s*[:：]\s*(.+?)\s*$`)
)

// ExtractFields pulls the title, status and last-updated values out of a
// document. The title is the first heading (parsed, not pattern-matched, so
// setext and ATX headings both work); status/updated come from the known
// metadata list lines.
func ExtractFields(content []byte) Fields {
	fields := Fields{
		Title:   UnknownField,
		Status:  UnknownField,
		Updated: "",
	}

	if title, ok := firstHeading(content); ok {
		fields.Title = title
	}

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := scanner.Text()
		if m := statusLine.FindStringSubmatch(line); m != nil && fields.Status == UnknownField {
			fields.Status = m[1]
		}
		if m := updatedLine.FindStringSubmatch(line); m != nil && fields.Updated == "" {
			fields.Updated = m[1]
		}
	}

	return fields
}

// firstHeading returns the text of the first heading in a markdown document.
func firstHeading(content []byte) (string, bool) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				sb.Write(textNode.Segment.Value(content))
			}
		}

		if t := strings.TrimSpace(sb.String()); t != "" {
			title = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title, title != ""
}
