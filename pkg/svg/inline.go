package svg

import (
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	"github.com/satopan/dtreeviz/pkg/errors"
)

// Namespace URIs used for matching and for the canonical declarations on
// the output root.
const (
	// SVGNamespace is the default namespace of SVG documents.
	SVGNamespace = "http://www.w3.org/2000/svg"

	// XLinkNamespace is the namespace of href-style reference attributes.
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

// =============================================================================
// Options
// =============================================================================

// Option configures an inlining pass.
type Option func(*inliner)

// WithLogger routes per-substitution debug logging to l.
// Logging never alters the transformation or its output.
func WithLogger(l *log.Logger) Option {
	return func(in *inliner) {
		if l != nil {
			in.logger = l
		}
	}
}

type inliner struct {
	logger *log.Logger
}

func newInliner(opts ...Option) *inliner {
	in := &inliner{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// =============================================================================
// Inline
// =============================================================================

// Inline replaces raster image placeholders in an SVG document with the
// content of the vector files they reference.
//
// Graphviz references per-node charts as raster images:
//
//	<g id="node1" class="node">
//	    <image xlink:href="/tmp/node4.png" width="45px" height="76px" x="76" y="-80"/>
//	</g>
//
// For every <image> that is a direct child of a <g>, both in the SVG
// namespace, Inline rewrites the reference path from .png to .svg, parses
// that file, copies the placeholder's attributes onto its root element
// (the xlink href itself is dropped), and splices that root into the
// document in place of the placeholder. The spliced root is appended, so
// it always ends up as the last child of the enclosing <g> regardless of
// where the placeholder sat among its siblings.
//
// The returned string is the serialized root element, with the SVG
// namespace declared as the default and the xlink namespace bound to the
// "xlink" prefix. Prologue tokens of the input (XML declaration, doctype)
// are not carried over.
//
// Inline fails with [errors.ErrCodeParse] if doc is not well-formed and
// with [errors.ErrCodeFileAccess] if any referenced file cannot be read or
// loaded. Any error means the transformation produced nothing; there is no
// partial output.
func Inline(doc string, opts ...Option) (string, error) {
	in := newInliner(opts...)

	d, err := parse(doc)
	if err != nil {
		return "", err
	}

	matches := findPlaceholders(d.Root())
	in.logger.Debug("scanned document", "placeholders", len(matches))

	spliced := make([]*etree.Element, 0, len(matches))
	for _, m := range matches {
		root, err := in.load(m)
		if err != nil {
			return "", err
		}
		mergeAttrs(root, m.img)
		m.parent.AddChild(root)
		m.parent.RemoveChild(m.img)
		spliced = append(spliced, root)
	}

	registerNamespaces(d.Root(), spliced)

	out := etree.NewDocument()
	out.SetRoot(d.Root())
	return out.WriteToString()
}

// =============================================================================
// Placeholder Listing
// =============================================================================

// Placeholder describes one raster placeholder found in a document.
type Placeholder struct {
	// Href is the raw value of the placeholder's xlink href attribute.
	Href string `json:"href"`

	// Path is Href resolved with [VectorPath]: the file an inlining pass
	// would read for this placeholder.
	Path string `json:"path"`

	// Attrs holds the placeholder's presentation attributes keyed by their
	// full attribute name. The href itself is excluded, mirroring the merge
	// rule.
	Attrs map[string]string `json:"attrs,omitempty"`
}

// Placeholders lists every placeholder [Inline] would substitute, in
// document order, without mutating the document or touching any referenced
// file. It fails with [errors.ErrCodeParse] if doc is not well-formed.
func Placeholders(doc string) ([]Placeholder, error) {
	d, err := parse(doc)
	if err != nil {
		return nil, err
	}

	matches := findPlaceholders(d.Root())
	out := make([]Placeholder, len(matches))
	for i, m := range matches {
		attrs := make(map[string]string, len(m.img.Attr))
		for _, a := range m.img.Attr {
			if isNamespaceDecl(a) || isXLinkHref(a) {
				continue
			}
			attrs[a.FullKey()] = a.Value
		}
		out[i] = Placeholder{
			Href:  m.href,
			Path:  VectorPath(m.href),
			Attrs: attrs,
		}
	}
	return out, nil
}

// =============================================================================
// Parsing and Matching
// =============================================================================

// parse reads a document string strictly: anything not well-formed is
// rejected up front, before any referenced file is touched.
func parse(doc string) (*etree.Document, error) {
	d := etree.NewDocument()
	d.ReadSettings.ValidateInput = true
	if err := d.ReadFromString(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse document")
	}
	if d.Root() == nil {
		return nil, errors.New(errors.ErrCodeParse, "document has no root element")
	}
	return d, nil
}

// placeholderMatch pairs a placeholder with its parent. Both are captured
// before any mutation, so splicing never needs to re-walk the changing
// tree.
type placeholderMatch struct {
	parent *etree.Element
	img    *etree.Element
	href   string
}

// findPlaceholders walks the tree in document order and collects every
// <image> whose immediate parent is a <g>, both in the SVG namespace.
// Elements without a namespace, or in another namespace, never match.
func findPlaceholders(root *etree.Element) []placeholderMatch {
	if root == nil {
		return nil
	}
	var out []placeholderMatch
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		isGroup := el.Tag == "g" && el.NamespaceURI() == SVGNamespace
		for _, child := range el.ChildElements() {
			if isGroup && child.Tag == "image" && child.NamespaceURI() == SVGNamespace {
				out = append(out, placeholderMatch{parent: el, img: child, href: hrefValue(child)})
			}
			walk(child)
		}
	}
	walk(root)
	return out
}

// hrefValue returns the value of the element's xlink href attribute, or ""
// if it carries none. Matching is by resolved namespace, so any prefix
// bound to the xlink URI counts.
func hrefValue(el *etree.Element) string {
	for _, a := range el.Attr {
		if isXLinkHref(a) {
			return a.Value
		}
	}
	return ""
}

// VectorPath rewrites a placeholder reference to the vector file the
// inliner loads. Every occurrence of ".png" is replaced; a reference
// without that substring resolves to itself and the later open decides
// whether it exists.
func VectorPath(href string) string {
	return strings.ReplaceAll(href, ".png", ".svg")
}

// =============================================================================
// Loading and Splicing
// =============================================================================

// load reads and parses the vector file behind a placeholder. The file is
// read in full before parsing. Every failure, including a malformed
// referenced document, is a file-access failure wrapping its cause.
func (in *inliner) load(m placeholderMatch) (*etree.Element, error) {
	path := VectorPath(m.href)
	in.logger.Debug("inlining placeholder", "href", m.href, "file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, err, "read referenced file %q", path)
	}

	sub := etree.NewDocument()
	sub.ReadSettings.ValidateInput = true
	if err := sub.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, err, "parse referenced file %q", path)
	}
	if sub.Root() == nil {
		return nil, errors.New(errors.ErrCodeFileAccess, "referenced file %q has no root element", path)
	}
	return sub.Root(), nil
}

// mergeAttrs copies every placeholder attribute onto the referenced root,
// overwriting attributes that resolve to the same (namespace, local name)
// pair. The xlink href is never copied. Namespace declarations are not
// attributes in this data model and stay untouched on both sides.
func mergeAttrs(root, img *etree.Element) {
	for _, a := range img.Attr {
		if isNamespaceDecl(a) || isXLinkHref(a) {
			continue
		}
		removeShadowed(root, a)
		root.CreateAttr(a.FullKey(), a.Value)
	}
}

// removeShadowed drops an attribute on root that resolves to the same
// namespace and local name as a under a different prefix, so the copy
// cannot leave two spellings of one qualified name behind.
func removeShadowed(root *etree.Element, a etree.Attr) {
	uri := a.NamespaceURI()
	for _, ex := range root.Attr {
		if isNamespaceDecl(ex) {
			continue
		}
		if ex.Key == a.Key && ex.FullKey() != a.FullKey() && ex.NamespaceURI() == uri {
			root.RemoveAttr(ex.FullKey())
			return
		}
	}
}

// isXLinkHref reports whether a is the reference-identifying attribute: a
// prefixed href that resolves to the xlink namespace.
func isXLinkHref(a etree.Attr) bool {
	return a.Key == "href" && a.Space != "" && a.Space != "xmlns" && a.NamespaceURI() == XLinkNamespace
}

// isNamespaceDecl reports whether a declares a namespace rather than
// carrying data.
func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// =============================================================================
// Namespace Registration
// =============================================================================

// registerNamespaces pins the canonical prefixes on the output root: the
// SVG namespace becomes the default declaration, and xlink is declared
// under its usual prefix whenever the tree still uses it. Declarations the
// splices made redundant are then removed from the spliced roots, so the
// output reads like ordinary tooling output instead of repeating the same
// binding at every splice point.
func registerNamespaces(root *etree.Element, spliced []*etree.Element) {
	if root == nil {
		return
	}
	if root.Space == "" && root.NamespaceURI() == SVGNamespace {
		root.CreateAttr("xmlns", SVGNamespace)
	}
	if usesXLink(root) {
		root.CreateAttr("xmlns:xlink", XLinkNamespace)
	}
	for _, el := range spliced {
		dropRedundantDecls(el)
	}
}

// usesXLink reports whether any element or attribute in the tree resolves
// to the xlink namespace.
func usesXLink(el *etree.Element) bool {
	if el.Space != "" && el.NamespaceURI() == XLinkNamespace {
		return true
	}
	for _, a := range el.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		if a.Space != "" && a.NamespaceURI() == XLinkNamespace {
			return true
		}
	}
	for _, child := range el.ChildElements() {
		if usesXLink(child) {
			return true
		}
	}
	return false
}

// dropRedundantDecls removes namespace declarations on a spliced root that
// restate what is already in scope at its new position. Removal is only
// safe when the surrounding scope binds the exact same URI; anything else
// is left alone.
func dropRedundantDecls(el *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}
	if a := el.SelectAttr("xmlns"); a != nil && a.Value == scopeDefault(parent) {
		el.RemoveAttr("xmlns")
	}
	if a := el.SelectAttr("xmlns:xlink"); a != nil && a.Value == XLinkNamespace && scopePrefix(parent, "xlink") == XLinkNamespace {
		el.RemoveAttr("xmlns:xlink")
	}
}

// scopeDefault returns the default namespace in scope at el, following the
// nearest xmlns declaration upward. Empty means no default namespace.
func scopeDefault(el *etree.Element) string {
	for e := el; e != nil; e = e.Parent() {
		if a := e.SelectAttr("xmlns"); a != nil {
			return a.Value
		}
	}
	return ""
}

// scopePrefix returns the URI bound to prefix in scope at el, or "" if the
// prefix is unbound there.
func scopePrefix(el *etree.Element, prefix string) string {
	for e := el; e != nil; e = e.Parent() {
		if a := e.SelectAttr("xmlns:" + prefix); a != nil {
			return a.Value
		}
	}
	return ""
}
