// Package registry holds the editor's ordered collection of shapes.
//
// A shape's identity is its position: removing one shifts every later
// shape down by one.
package registry

import (
	"errors"
	"fmt"
	"iter"

	"oss.terrastruct.com/shapedit/shape"
)

var ErrOutOfRange = errors.New("index out of range")

type Registry struct {
	shapes []shape.Shape
}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) Len() int {
	return len(r.shapes)
}

// Add appends s and returns its index.
func (r *Registry) Add(s shape.Shape) int {
	r.shapes = append(r.shapes, s)
	return len(r.shapes) - 1
}

func (r *Registry) Get(i int) (shape.Shape, error) {
	if err := r.check(i); err != nil {
		return nil, err
	}
	return r.shapes[i], nil
}

// Remove deletes and returns the shape at i.
// On error the registry is unchanged.
func (r *Registry) Remove(i int) (shape.Shape, error) {
	if err := r.check(i); err != nil {
		return nil, err
	}
	s := r.shapes[i]
	copy(r.shapes[i:], r.shapes[i+1:])
	r.shapes[len(r.shapes)-1] = nil
	r.shapes = r.shapes[:len(r.shapes)-1]
	return s, nil
}

// All yields index and shape pairs in order. Each call starts over.
func (r *Registry) All() iter.Seq2[int, shape.Shape] {
	return func(yield func(int, shape.Shape) bool) {
		for i, s := range r.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Shapes returns a copy of the current shapes in order.
func (r *Registry) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(r.shapes))
	copy(out, r.shapes)
	return out
}

func (r *Registry) check(i int) error {
	if i < 0 || i >= len(r.shapes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(r.shapes))
	}
	return nil
}
