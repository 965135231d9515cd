package essence

import (
	"fmt"
	"reflect"
)

// constructor builds the concrete value for already converted components.
type constructor func(Components) Tuple

// The registry is filled once by init and only read afterwards, so lookups
// need no locking.
var (
	constructors    = make(map[Shape]constructor)
	interfaceShapes = make(map[reflect.Type]Shape)
)

func init() {
	registerScalar[float64]()
	registerScalar[float32]()
	registerScalar[int32]()
	registerScalar[uint8]()
	registerChannel[float32]()
	registerChannel[uint8]()
}

func registerScalar[T Scalar]() {
	k := KindOf[T]()

	register[Tuple2Of[T]](Shape{2, RoleTuple, k}, func(c Components) Tuple { return tuple2From[T](c) })
	register[Tuple3Of[T]](Shape{3, RoleTuple, k}, func(c Components) Tuple { return tuple3From[T](c) })
	register[Tuple4Of[T]](Shape{4, RoleTuple, k}, func(c Components) Tuple { return tuple4From[T](c) })

	register[Vector2Of[T]](Shape{2, RoleVector, k}, func(c Components) Tuple { return vector2From[T](c) })
	register[Vector3Of[T]](Shape{3, RoleVector, k}, func(c Components) Tuple { return vector3From[T](c) })
	register[Vector4Of[T]](Shape{4, RoleVector, k}, func(c Components) Tuple { return vector4From[T](c) })

	register[Point2Of[T]](Shape{2, RolePoint, k}, func(c Components) Tuple { return point2From[T](c) })
	register[Point3Of[T]](Shape{3, RolePoint, k}, func(c Components) Tuple { return point3From[T](c) })
	register[Point4Of[T]](Shape{4, RolePoint, k}, func(c Components) Tuple { return point4From[T](c) })
}

func registerChannel[T Channel]() {
	k := KindOf[T]()

	register[Color3Of[T]](Shape{3, RoleColor, k}, func(c Components) Tuple { return color3From[T](c) })
	register[Color4Of[T]](Shape{4, RoleColor, k}, func(c Components) Tuple { return color4From[T](c) })
}

func register[I Tuple](s Shape, ctor constructor) {
	constructors[s] = ctor
	interfaceShapes[reflect.TypeOf((*I)(nil)).Elem()] = s
}

// targetShape resolves the shape a conversion to T produces. Concrete value
// types report their own shape; capability interfaces are looked up in the
// registry. Any other T, such as a pointer type, is not a target.
func targetShape[T Tuple]() (Shape, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	switch typ.Kind() {
	case reflect.Struct:
		var zero T
		return zero.Shape(), nil
	case reflect.Interface:
		if s, ok := interfaceShapes[typ]; ok {
			return s, nil
		}
		return Shape{}, &ConversionError{Reason: fmt.Sprintf("no concrete type implements %v", typ)}
	}
	return Shape{}, &ConversionError{Reason: fmt.Sprintf("%v is not a value type", typ)}
}

// ShapeOf returns the shape a conversion to T produces, or an error when T
// is an interface without a registered concrete type.
func ShapeOf[T Tuple]() (Shape, error) {
	return targetShape[T]()
}

// Convert returns src as a T.
//
// If src already is a T it is returned unchanged. Otherwise the components
// of src are converted into T's shape (see Components.To) and a new value
// of the registered concrete type is built. T may be a concrete type such
// as Vector3f or a capability interface such as Point2Of[int32]. Targets
// with more components than src, and interfaces without a registered
// implementation, fail with *ConversionError.
func Convert[T Tuple](src Tuple) (T, error) {
	var zero T
	if src == nil {
		return zero, &ConversionError{Reason: "nil source"}
	}
	if t, ok := src.(T); ok {
		return t, nil
	}
	dst, err := targetShape[T]()
	if err != nil {
		if ce, ok := err.(*ConversionError); ok {
			ce.From = src.Shape()
		}
		return zero, err
	}
	out, err := ConvertShape(src, dst)
	if err != nil {
		return zero, err
	}
	t, ok := out.(T)
	if !ok {
		return zero, &ConversionError{From: src.Shape(), To: dst, Reason: "registered type does not implement target"}
	}
	return t, nil
}

// MustConvert is like Convert but panics on error.
func MustConvert[T Tuple](src Tuple) T {
	t, err := Convert[T](src)
	if err != nil {
		panic(err)
	}
	return t
}

// ConvertShape converts src into a new value of the concrete type with
// shape dst.
func ConvertShape(src Tuple, dst Shape) (Tuple, error) {
	if src == nil {
		return nil, &ConversionError{To: dst, Reason: "nil source"}
	}
	c, err := src.Components().To(dst)
	if err != nil {
		if debugEnabled() {
			Logger().Debug("essence: conversion rejected", "from", src.Shape().String(), "to", dst.String(), "err", err)
		}
		return nil, err
	}
	return FromComponents(c)
}

// FromComponents builds the concrete value registered for c.Shape. The
// components must already be representable in the shape's kind.
func FromComponents(c Components) (Tuple, error) {
	ctor, ok := constructors[c.Shape]
	if !ok {
		return nil, &ConversionError{To: c.Shape, Reason: "no such type"}
	}
	return ctor(c), nil
}
