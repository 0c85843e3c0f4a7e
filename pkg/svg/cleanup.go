package svg

import (
	"strings"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/beevik/etree"
)

// Namespaces written by drawing tools that carry no rendering information.
var editorNamespaces = map[string]bool{
	"inkscape": true,
	"sodipodi": true,
	"rdf":      true,
	"cc":       true,
	"dc":       true,
	"sketch":   true,
	"serif":    true,
}

var droppedTags = map[string]bool{
	"metadata": true,
	"title":    true,
	"desc":     true,
}

var forbiddenTags = map[string]bool{
	"script":        true,
	"foreignObject": true,
}

// Cleaner normalises markup structure.
type Cleaner struct{}

// Cleanup strips comments, processing instructions, editor metadata and
// event handlers, and makes sure the root carries a viewBox. It fails on
// scripts, embedded foreign content and external references.
func (Cleaner) Cleanup(d *Document) error {
	for i := len(d.doc.Child) - 1; i >= 0; i-- {
		if _, ok := d.doc.Child[i].(*etree.Element); !ok {
			d.doc.RemoveChildAt(i)
		}
	}

	root := d.Root()
	if err := cleanAttributes(root); err != nil {
		return err
	}
	if err := cleanChildren(root); err != nil {
		return err
	}
	return ensureViewBox(root)
}

func cleanChildren(el *etree.Element) error {
	for i := len(el.Child) - 1; i >= 0; i-- {
		switch t := el.Child[i].(type) {
		case *etree.Comment, *etree.ProcInst, *etree.Directive:
			el.RemoveChildAt(i)
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				el.RemoveChildAt(i)
			}
		case *etree.Element:
			if forbiddenTags[t.Tag] {
				return errors.Newf(errors.ErrSVGCleanup, "unsupported element <%s>", t.FullTag())
			}
			if editorNamespaces[t.Space] || droppedTags[t.Tag] {
				el.RemoveChildAt(i)
				continue
			}
			if err := cleanAttributes(t); err != nil {
				return err
			}
			if err := cleanChildren(t); err != nil {
				return err
			}
		}
	}
	return nil
}

func cleanAttributes(el *etree.Element) error {
	var drop []string
	var xlinkHref *string
	for _, a := range el.Attr {
		switch {
		case editorNamespaces[a.Space]:
			drop = append(drop, a.FullKey())
		case a.Space == "xmlns" && editorNamespaces[a.Key]:
			drop = append(drop, a.FullKey())
		case a.Space == "" && strings.HasPrefix(strings.ToLower(a.Key), "on"):
			drop = append(drop, a.Key)
		case a.Key == "href" && (a.Space == "" || a.Space == "xlink"):
			if !isLocalReference(a.Value) {
				return errors.Newf(errors.ErrSVGCleanup, "external reference %q on <%s>", a.Value, el.FullTag())
			}
			if a.Space == "xlink" {
				v := a.Value
				xlinkHref = &v
				drop = append(drop, a.FullKey())
			}
		}
	}
	for _, key := range drop {
		el.RemoveAttr(key)
	}
	if xlinkHref != nil && el.SelectAttr("href") == nil {
		el.CreateAttr("href", *xlinkHref)
	}
	return nil
}

func isLocalReference(href string) bool {
	return strings.HasPrefix(href, "#") || strings.HasPrefix(href, "data:")
}

func ensureViewBox(root *etree.Element) error {
	if root.SelectAttr("viewBox") != nil {
		return nil
	}
	w, okW := parseLength(root.SelectAttrValue("width", ""))
	h, okH := parseLength(root.SelectAttrValue("height", ""))
	if !okW || !okH {
		return errors.New(errors.ErrSVGCleanup, "icon has neither viewBox nor numeric width and height")
	}
	root.CreateAttr("viewBox", "0 0 "+formatNumber(w)+" "+formatNumber(h))
	return nil
}
