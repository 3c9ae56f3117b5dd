package arcmove

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/zeusync/moco/pkg/floatfmt"
	"github.com/zeusync/moco/pkg/generic"
)

var buffers = generic.NewPool(func() *bytes.Buffer { return new(bytes.Buffer) })

// Namespace is bound to the "scen" prefix on the root element.
const Namespace = "http://caliri.com/motion/scene"

// Element and attribute names carry the literal prefix: consumers match on
// "scen:..." and expect y before x.
type xmlScene struct {
	XMLName  xml.Name  `xml:"scen:scene"`
	XMLNS    string    `xml:"xmlns:scen,attr"`
	EndFrame string    `xml:"endframe,attr"`
	Axes     []xmlAxis `xml:"scen:axis"`
}

type xmlAxis struct {
	Name          string     `xml:"name,attr"`
	Units         string     `xml:"units,attr,omitempty"`
	Points        []xmlPoint `xml:"scen:points"`
	ControlPoints []xmlPoint `xml:"scen:controlPoints"`
}

type xmlPoint struct {
	Y string `xml:"y,attr"`
	X string `xml:"x,attr"`
}

func toXMLPoints(points []Point) []xmlPoint {
	if len(points) == 0 {
		return nil
	}
	out := make([]xmlPoint, len(points))
	for i, p := range points {
		out[i] = xmlPoint{Y: floatfmt.Repr(p.Y), X: floatfmt.Repr(p.X)}
	}
	return out
}

// Marshal renders the document without an XML declaration.
func (d Document) Marshal() ([]byte, error) {
	scene := xmlScene{
		XMLNS:    Namespace,
		EndFrame: floatfmt.Int(d.EndFrame),
		Axes:     make([]xmlAxis, len(d.Axes)),
	}
	for i, a := range d.Axes {
		scene.Axes[i] = xmlAxis{
			Name:          a.Name,
			Units:         a.Units,
			Points:        toXMLPoints(a.Points),
			ControlPoints: toXMLPoints(a.ControlPoints),
		}
	}

	buf := buffers.Get()
	defer func() {
		buf.Reset()
		buffers.Put(buf)
	}()
	enc := xml.NewEncoder(buf)
	if err := enc.Encode(scene); err != nil {
		return nil, fmt.Errorf("encode arc move: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode arc move: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}
