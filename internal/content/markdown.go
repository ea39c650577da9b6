// Package content renders the optional per-project Markdown details
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"folio.dev/internal/models"
	"folio.dev/internal/slug"
)

var assetRef = regexp.MustCompile(`(src|href)=(["'])assets/`)

// Document is a rendered details page
type Document struct {
	HTML     template.HTML
	Headings []models.Heading
}

// Renderer converts Markdown to sanitized HTML
type Renderer struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	basePath string
}

// NewRenderer builds a Renderer. Relative "assets/" links in the output are
// rebased onto basePath
func NewRenderer(basePath string) *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy:   policy,
		basePath: normalizeBase(basePath),
	}
}

// Render converts src and collects its level 2 and 3 headings
func (r *Renderer) Render(src []byte) (*Document, error) {
	ctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	out := r.policy.SanitizeBytes(buf.Bytes())
	out = assetRef.ReplaceAll(out, []byte("${1}=${2}"+r.basePath+"assets/"))

	return &Document{
		HTML:     template.HTML(out),
		Headings: collectHeadings(doc, src),
	}, nil
}

func collectHeadings(doc ast.Node, src []byte) []models.Heading {
	var headings []models.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level == 2 || h.Level == 3 {
			headings = append(headings, models.Heading{
				Level: h.Level,
				Text:  plainText(h, src),
				ID:    headingID(h),
			})
		}
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// headingIDs derives anchors with the slug generator, numbering repeats
type headingIDs struct {
	seen map[string]int
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{seen: make(map[string]int)}
}

func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := slug.Generate(string(value))
	if base == "" {
		base = "section"
	}
	id := base
	if n := h.seen[base]; n > 0 {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	h.seen[base]++
	return []byte(id)
}

func (h *headingIDs) Put(value []byte) {
	h.seen[string(value)]++
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") && !strings.HasPrefix(base, ".") && !strings.Contains(base, "://") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
