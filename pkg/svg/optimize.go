package svg

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/beevik/etree"
)

// DefaultPrecision is the number of decimals kept on geometry attributes.
const DefaultPrecision = 3

var numericAttributes = map[string]bool{
	"x": true, "y": true, "width": true, "height": true,
	"cx": true, "cy": true, "r": true, "rx": true, "ry": true,
	"x1": true, "y1": true, "x2": true, "y2": true,
	"stroke-width": true, "opacity": true,
	"fill-opacity": true, "stroke-opacity": true, "stop-opacity": true,
	"offset": true,
}

var urlReference = regexp.MustCompile(`url\(\s*['"]?#([^'")\s]+)['"]?\s*\)`)

// styleIDReference matches id selectors, and anything shaped like one, in
// stylesheet text.
var styleIDReference = regexp.MustCompile(`#([A-Za-z_][A-Za-z0-9_-]*)`)

// Optimizer shrinks a cleaned document without changing how it renders.
// A negative Precision disables number rounding.
type Optimizer struct {
	Precision int
}

// Optimize unwraps attribute-less groups, drops empty containers and
// unreferenced ids, and rounds numeric attributes. Raster images and
// documents left with nothing to draw are rejected.
func (o Optimizer) Optimize(d *Document) error {
	root := d.Root()

	var rasterErr error
	walk(root, func(el *etree.Element) {
		if rasterErr == nil && el.Tag == "image" {
			rasterErr = errors.New(errors.ErrSVGOptimize, "raster <image> elements are not supported")
		}
	})
	if rasterErr != nil {
		return rasterErr
	}

	unwrapGroups(root)
	removeEmptyContainers(root)
	removeUnreferencedIDs(root)
	if o.Precision >= 0 {
		roundNumbers(root, o.Precision)
	}

	if len(root.ChildElements()) == 0 {
		return errors.New(errors.ErrSVGOptimize, "icon has no drawable content")
	}
	return nil
}

func walk(el *etree.Element, fn func(*etree.Element)) {
	for _, child := range el.ChildElements() {
		fn(child)
		walk(child, fn)
	}
}

func unwrapGroups(el *etree.Element) {
	for _, child := range el.ChildElements() {
		unwrapGroups(child)
	}
	for i := len(el.Child) - 1; i >= 0; i-- {
		g, ok := el.Child[i].(*etree.Element)
		if !ok || g.Space != "" || g.Tag != "g" || len(g.Attr) != 0 {
			continue
		}
		el.RemoveChildAt(i)
		for j := 0; len(g.Child) > 0; j++ {
			el.InsertChildAt(i+j, g.RemoveChildAt(0))
		}
	}
}

func removeEmptyContainers(el *etree.Element) {
	for _, child := range el.ChildElements() {
		removeEmptyContainers(child)
	}
	for i := len(el.Child) - 1; i >= 0; i-- {
		c, ok := el.Child[i].(*etree.Element)
		if !ok || (c.Tag != "g" && c.Tag != "defs") {
			continue
		}
		if len(c.ChildElements()) == 0 {
			el.RemoveChildAt(i)
		}
	}
}

func removeUnreferencedIDs(root *etree.Element) {
	referenced := make(map[string]bool)
	walk(root, func(el *etree.Element) {
		for _, a := range el.Attr {
			if a.Key == "href" && strings.HasPrefix(a.Value, "#") {
				referenced[a.Value[1:]] = true
			}
			for _, m := range urlReference.FindAllStringSubmatch(a.Value, -1) {
				referenced[m[1]] = true
			}
		}
		if el.Tag == "style" {
			for _, m := range styleIDReference.FindAllStringSubmatch(el.Text(), -1) {
				referenced[m[1]] = true
			}
		}
	})

	walk(root, func(el *etree.Element) {
		if id := el.SelectAttr("id"); id != nil && !referenced[id.Value] {
			el.RemoveAttr("id")
		}
	})
}

func roundNumbers(root *etree.Element, precision int) {
	scale := math.Pow(10, float64(precision))
	walk(root, func(el *etree.Element) {
		for _, a := range el.Attr {
			if a.Space != "" || !numericAttributes[a.Key] {
				continue
			}
			v, err := strconv.ParseFloat(a.Value, 64)
			if err != nil {
				continue
			}
			rounded := formatNumber(math.Round(v*scale) / scale)
			if rounded != a.Value {
				el.CreateAttr(a.Key, rounded)
			}
		}
	})
}
