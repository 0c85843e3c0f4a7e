// Package svg parses icon files into an etree document and applies the
// structural cleanup and optimisation passes that run before an icon is
// committed to the set.
package svg

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/beevik/etree"
)

// Icon is the normalised content committed for a Logical Name. Body holds
// the serialised children of the root element, the box comes from viewBox.
type Icon struct {
	Body   string
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Document is a parsed SVG file.
type Document struct {
	doc *etree.Document
}

// Parse reads data into a Document. It fails unless data is well-formed XML
// with an <svg> root whose viewBox, when present, describes a non-empty box.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrSVGParse, "malformed XML")
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrSVGParse, "document has no root element")
	}
	if root.Tag != "svg" {
		return nil, errors.Newf(errors.ErrSVGParse, "root element is <%s>, expected <svg>", root.FullTag())
	}
	if vb := root.SelectAttr("viewBox"); vb != nil {
		if _, err := parseViewBox(vb.Value); err != nil {
			return nil, err
		}
	}

	return &Document{doc: doc}, nil
}

// Root returns the <svg> element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Icon extracts the committed form of the document.
func (d *Document) Icon() (*Icon, error) {
	root := d.Root()

	var box [4]float64
	if vb := root.SelectAttr("viewBox"); vb != nil {
		parsed, err := parseViewBox(vb.Value)
		if err != nil {
			return nil, err
		}
		box = parsed
	} else {
		w, okW := parseLength(root.SelectAttrValue("width", ""))
		h, okH := parseLength(root.SelectAttrValue("height", ""))
		if !okW || !okH {
			return nil, errors.New(errors.ErrSVGParse, "icon has neither viewBox nor numeric width and height")
		}
		box = [4]float64{0, 0, w, h}
	}

	body, err := d.body()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSVGParse, "cannot serialise icon body")
	}

	return &Icon{
		Body:   body,
		Left:   box[0],
		Top:    box[1],
		Width:  box[2],
		Height: box[3],
	}, nil
}

func (d *Document) body() (string, error) {
	root := d.Root().Copy()
	out := etree.NewDocument()
	for len(root.Child) > 0 {
		out.AddChild(root.RemoveChildAt(0))
	}
	return out.WriteToString()
}

func parseViewBox(value string) ([4]float64, error) {
	var box [4]float64
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return box, errors.Newf(errors.ErrSVGParse, "invalid viewBox %q", value)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return box, errors.Wrapf(err, errors.ErrSVGParse, "invalid viewBox %q", value)
		}
		box[i] = v
	}
	if box[2] <= 0 || box[3] <= 0 {
		return box, errors.Newf(errors.ErrSVGParse, "viewBox %q has no area", value)
	}
	return box, nil
}

// parseLength accepts plain numbers and pixel lengths.
func parseLength(value string) (float64, bool) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "px")
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
