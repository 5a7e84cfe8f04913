package shape

import "fmt"

// Visitor has one method per variant.
type Visitor[T any] interface {
	VisitPoint(Point) T
	VisitLine(Line) T
	VisitCircle(Circle) T
	VisitSquare(Square) T
	VisitRectangle(Rectangle) T
	VisitOval(Oval) T
	VisitTriangle(Triangle) T
}

// Visit dispatches s to the matching method of v.
// Pointers to variants are accepted and dereferenced.
func Visit[T any](s Shape, v Visitor[T]) T {
	switch s := s.(type) {
	case Point:
		return v.VisitPoint(s)
	case *Point:
		return v.VisitPoint(*s)
	case Line:
		return v.VisitLine(s)
	case *Line:
		return v.VisitLine(*s)
	case Circle:
		return v.VisitCircle(s)
	case *Circle:
		return v.VisitCircle(*s)
	case Square:
		return v.VisitSquare(s)
	case *Square:
		return v.VisitSquare(*s)
	case Rectangle:
		return v.VisitRectangle(s)
	case *Rectangle:
		return v.VisitRectangle(*s)
	case Oval:
		return v.VisitOval(s)
	case *Oval:
		return v.VisitOval(*s)
	case Triangle:
		return v.VisitTriangle(s)
	case *Triangle:
		return v.VisitTriangle(*s)
	}
	// unreachable: Shape is sealed by isShape
	panic(fmt.Sprintf("shape: unhandled variant %T", s))
}
