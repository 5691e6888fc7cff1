package htmlextract

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/webarchivetools/warctext"
)

// mainContentSelector lists the class/role conventions common enough across
// CMSes that a direct match beats running the heuristic classifier.
const mainContentSelector = `.article-body, .articleBody, .contentBody, .article-text, .main-content, .postcontent, .post-content, .single-post, [role="main"]`

// ExtractPlainText prepares
// a skip set and an optional main-content root, then runs the Walker and
// Serializer over node.
func ExtractPlainText(node *html.Node, opts ExtractOpts) (string, error) {
	if node == nil {
		return "", warctext.Errorf(warctext.EINVALID, "nil base node")
	}

	base := node
	if base.Type == html.DocumentNode {
		base = firstElementChild(base)
		if base == nil {
			return "", warctext.Errorf(warctext.EINVALID, "document has no element child")
		}
	}

	root := base
	useClassifier := opts.MainContent
	if opts.MainContent {
		if sel, err := cascadia.ParseGroup(mainContentSelector); err == nil {
			if matches := cascadia.QueryAll(base, sel); len(matches) == 1 {
				root = matches[0]
			}
		}
	}

	skip := buildSkipSet(root, opts)

	w := NewWalker(opts, skip, useClassifier)
	nodes := w.Walk(root)

	s := NewSerializer(opts)
	return s.Serialize(nodes), nil
}

// buildSkipSet resolves opts' skip selectors (script/style always,
// noscript when disabled, the alt-text-bearing elements when AltTexts is
// disabled, the form-field elements when FormFields is disabled, plus
// opts.SkipElements) into a node membership set the Walker can check in
// O(1) per visit.
func buildSkipSet(root *html.Node, opts ExtractOpts) map[*html.Node]bool {
	selectors := []string{"script", "style"}
	if !opts.Noscript {
		selectors = append(selectors, "noscript")
	}
	if !opts.AltTexts {
		selectors = append(selectors, "object", "video", "audio", "embed", "img", "area", "svg", "figcaption", "figure")
	}
	if !opts.FormFields {
		selectors = append(selectors, "textarea", "input", "button", "select", "option", "label")
	}
	for _, sel := range opts.SkipElements {
		sel = strings.TrimSpace(sel)
		if sel != "" {
			selectors = append(selectors, sel)
		}
	}

	skip := make(map[*html.Node]bool)
	group, err := cascadia.ParseGroup(strings.Join(selectors, ", "))
	if err != nil {
		return skip
	}
	for _, n := range cascadia.QueryAll(root, group) {
		skip[n] = true
	}
	return skip
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}
