// Package pdf renders shapes onto a single A4 page.
package pdf

import (
	"bytes"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"oss.terrastruct.com/shapedit/lib/color"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/version"
	"oss.terrastruct.com/shapedit/shape"
)

const (
	HEADER_HEIGHT = 72.
	PAGE_MARGIN   = 28.
	POINT_RADIUS  = 2.
)

type GoFPDF struct {
	pdf *gofpdf.Fpdf
}

func Init() *GoFPDF {
	newGofPDF := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})

	newGofPDF.SetAutoPageBreak(false, 0)
	newGofPDF.SetLineWidth(1.5)
	newGofPDF.SetMargins(0, 0, 0)

	return &GoFPDF{
		pdf: newGofPDF,
	}
}

// AddShapesPage adds a page with title in the header and shapes scaled to
// fill the rest of the page. box is the world area mapped onto the page.
func (g *GoFPDF) AddShapesPage(title string, shapes []shape.Shape, box geo.Box) error {
	g.pdf.AddPage()
	pageWidth, pageHeight := g.pdf.GetPageSize()

	// Draw header
	g.pdf.SetFont("Helvetica", "B", 14)
	g.pdf.SetTextColor(10, 15, 37) // steel-900
	g.pdf.SetXY(PAGE_MARGIN, 0)
	g.pdf.CellFormat(pageWidth-2*PAGE_MARGIN, HEADER_HEIGHT, title, "", 0, "", false, 0, "")

	g.pdf.SetFont("Helvetica", "", 10)
	g.pdf.SetXY(PAGE_MARGIN, HEADER_HEIGHT-20)
	g.pdf.CellFormat(pageWidth-2*PAGE_MARGIN, 20, box.ToString(), "", 0, "", false, 0, "")

	// Draw header/body separator
	g.pdf.SetDrawColor(10, 15, 37)
	g.pdf.SetLineWidth(1)
	g.pdf.Line(PAGE_MARGIN, HEADER_HEIGHT, pageWidth-PAGE_MARGIN, HEADER_HEIGHT)
	g.pdf.SetLineWidth(1.5)

	areaWidth := pageWidth - 2*PAGE_MARGIN
	areaHeight := pageHeight - HEADER_HEIGHT - 2*PAGE_MARGIN
	bw, bh := box.Width(), box.Height()
	if bw <= 0 {
		bw = 1
	}
	if bh <= 0 {
		bh = 1
	}
	scale := math.Min(areaWidth/bw, areaHeight/bh)
	p := &painter{
		pdf:   g.pdf,
		box:   box,
		scale: scale,
		x0:    PAGE_MARGIN + (areaWidth-bw*scale)/2,
		y0:    HEADER_HEIGHT + PAGE_MARGIN + (areaHeight-bh*scale)/2,
	}
	for _, s := range shapes {
		r, gr, b := color.RGB(s.Kind())
		g.pdf.SetDrawColor(r, gr, b)
		g.pdf.SetFillColor(r, gr, b)
		shape.Visit[struct{}](s, p)
	}
	if g.pdf.Err() {
		return g.pdf.Error()
	}
	return nil
}

func (g *GoFPDF) Export(w io.Writer) error {
	return g.pdf.Output(w)
}

// Render returns a one page PDF of shapes.
func Render(title string, shapes []shape.Shape, box geo.Box) ([]byte, error) {
	g := Init()
	g.pdf.SetTitle(title, true)
	g.pdf.SetCreator(version.Creator(), true)
	if err := g.AddShapesPage(title, shapes, box); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := g.Export(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type painter struct {
	pdf    *gofpdf.Fpdf
	box    geo.Box
	scale  float64
	x0, y0 float64
}

// page maps a world point to page coordinates, where y grows downward.
func (p *painter) page(pt geo.Point) (float64, float64) {
	return p.x0 + (pt.X-p.box.XMin)*p.scale, p.y0 + (p.box.YMax-pt.Y)*p.scale
}

func (p *painter) polygon(points geo.Points) {
	pts := make([]gofpdf.PointType, len(points))
	for i, pt := range points {
		pts[i].X, pts[i].Y = p.page(*pt)
	}
	p.pdf.Polygon(pts, "D")
}

func (p *painter) VisitPoint(s shape.Point) struct{} {
	x, y := p.page(s.Pos())
	p.pdf.Circle(x, y, POINT_RADIUS, "F")
	return struct{}{}
}

func (p *painter) VisitLine(s shape.Line) struct{} {
	x1, y1 := p.page(s.Start)
	x2, y2 := p.page(s.End)
	p.pdf.Line(x1, y1, x2, y2)
	return struct{}{}
}

func (p *painter) VisitCircle(s shape.Circle) struct{} {
	x, y := p.page(s.Center)
	p.pdf.Circle(x, y, s.Radius*p.scale, "D")
	return struct{}{}
}

func (p *painter) VisitSquare(s shape.Square) struct{} {
	p.polygon(s.Corners())
	return struct{}{}
}

func (p *painter) VisitRectangle(s shape.Rectangle) struct{} {
	p.polygon(s.Corners())
	return struct{}{}
}

func (p *painter) VisitOval(s shape.Oval) struct{} {
	x, y := p.page(s.Center)
	p.pdf.Ellipse(x, y, s.Width/2*p.scale, s.Height/2*p.scale, 0, "D")
	return struct{}{}
}

func (p *painter) VisitTriangle(s shape.Triangle) struct{} {
	p.polygon(s.Vertices())
	return struct{}{}
}
