// Command essencedemo demonstrates the essence geometry library.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/essence"
	"github.com/gogpu/essence/affine"
	"github.com/gogpu/essence/curve"
	"github.com/gogpu/essence/distance"
	"github.com/gogpu/essence/intersect"
	"github.com/gogpu/essence/mathutil"
)

func main() {
	var (
		cultureName = flag.String("culture", "invariant", "BCP 47 tag used to format numbers, e.g. de-DE")
		precision   = flag.Int("precision", -1, "fraction digits (-1 for shortest)")
		verbose     = flag.Bool("verbose", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		essence.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	culture := essence.Invariant
	if *cultureName != "invariant" {
		c, err := essence.ParseCulture(*cultureName)
		if err != nil {
			log.Fatalf("Invalid culture: %v", err)
		}
		culture = c
	}
	opts := []essence.FormatOption{essence.WithCulture(culture), essence.WithPrecision(*precision)}

	demoConversion(opts)
	demoIntersections(opts)
	demoDistance(opts)
	demoTransform(opts)
	demoRejections()
}

func demoConversion(opts []essence.FormatOption) {
	fmt.Println("# Conversion")

	v := essence.V3(1.25, -2.5, 1234.5)
	f := essence.MustConvert[essence.Vector3f](v)
	i := essence.MustConvert[essence.Point2i](v)
	fmt.Printf("%-10s %s\n", "Vector3d", essence.Format(v, opts...))
	fmt.Printf("%-10s %s\n", "Vector3f", essence.Format(f, opts...))
	fmt.Printf("%-10s %s\n", "Point2i", essence.Format(i, opts...))

	c := essence.RGBA[float32](1, 0.5, 0.25, 1)
	b := essence.MustConvert[essence.Color4b](c)
	fmt.Printf("%-10s %s -> %s (%s)\n", "Color4f", essence.Format(c, opts...), essence.Format(b, opts...), b.Hex())

	text := essence.Format(v, append(opts, essence.WithBrackets('(', ')'))...)
	back, err := essence.Parse[essence.Vector3d](text, opts...)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}
	fmt.Printf("%-10s %q -> %v\n\n", "Parse", text, back)
}

func demoIntersections(opts []essence.FormatOption) {
	fmt.Println("# Segment intersections")

	cases := [][4]essence.Point2d{
		{essence.P2(0.0, 0.0), essence.P2(10.0, 10.0), essence.P2(0.0, 10.0), essence.P2(10.0, 0.0)},
		{essence.P2(0.0, 0.0), essence.P2(6.0, 6.0), essence.P2(4.0, 4.0), essence.P2(10.0, 10.0)},
		{essence.P2(0.0, 0.0), essence.P2(10.0, 0.0), essence.P2(10.0, 0.0), essence.P2(12.0, 0.0)},
		{essence.P2(0.0, 0.0), essence.P2(10.0, 0.0), essence.P2(11.0, 0.0), essence.P2(12.0, 0.0)},
	}
	for _, c := range cases {
		s0, err := curve.NewSegment2(c[0], c[1])
		if err != nil {
			log.Fatalf("Segment: %v", err)
		}
		s1, err := curve.NewSegment2(c[2], c[3])
		if err != nil {
			log.Fatalf("Segment: %v", err)
		}
		r, err := intersect.SegmentSegment(s0, s1, mathutil.EpsilonFloat64)
		if err != nil {
			log.Fatalf("SegmentSegment: %v", err)
		}

		fmt.Printf("[%s]-[%s] x [%s]-[%s]: %v",
			essence.Format(c[0], opts...), essence.Format(c[1], opts...),
			essence.Format(c[2], opts...), essence.Format(c[3], opts...), r.Kind)
		for _, rec := range r.Records {
			fmt.Printf(" [%s]", essence.Format(rec.Point, append(opts, essence.WithPrecision(6))...))
		}
		fmt.Println()
	}
	fmt.Println()
}

func demoDistance(opts []essence.FormatOption) {
	fmt.Println("# Distances")

	circle, err := curve.NewCircle2(essence.P2(0.0, 0.0), 2)
	if err != nil {
		log.Fatalf("Circle: %v", err)
	}
	center, err := distance.PointCircle(circle.Center, circle, false, mathutil.EpsilonFloat64)
	if err != nil {
		log.Fatalf("PointCircle: %v", err)
	}
	fmt.Printf("center of r=2 circle: distance %g, closest [%s]\n", center.Distance(), essence.Format(center.Closest, opts...))

	arc, err := curve.NewArc2(circle, -math.Pi/4, math.Pi/2)
	if err != nil {
		log.Fatalf("Arc: %v", err)
	}
	p := essence.P2(-3.0, 0.5)
	r, err := distance.PointArc(p, arc, mathutil.EpsilonFloat64)
	if err != nil {
		log.Fatalf("PointArc: %v", err)
	}
	fmt.Printf("[%s] to arc: distance %.6g, closest [%s]\n\n",
		essence.Format(p, opts...), r.Distance(), essence.Format(r.Closest, append(opts, essence.WithPrecision(4))...))
}

func demoTransform(opts []essence.FormatOption) {
	fmt.Println("# Transform")

	m := affine.Rotate(math.Pi / 4).Then(affine.Scale(2, 2)).Then(affine.Translate(10, 0))
	box := essence.NewBox2(essence.P2(0.0, 0.0), essence.P2(1.0, 1.0))
	fmt.Printf("box %v -> %v\n", box, m.TransformBox(box))

	p, err := m.Apply(essence.T3[int32](1, 0, 9))
	if err != nil {
		log.Fatalf("Apply: %v", err)
	}
	fmt.Printf("Tuple3i(1, 0, 9) -> [%s]\n\n", essence.Format(p, append(opts, essence.WithPrecision(4))...))
}

// demoRejections shows the degenerate input errors; run with -verbose to
// see them logged as well.
func demoRejections() {
	fmt.Println("# Rejections")

	if _, err := essence.V2(0.0, 0.0).Unit(); err != nil {
		fmt.Println(err)
	}
	if _, err := curve.NewSegment2(essence.P2(1.0, 1.0), essence.P2(1.0, 1.0)); err != nil {
		fmt.Println(err)
	}
	if _, err := affine.Scale(0, 1).Invert(); err != nil {
		fmt.Println(err)
	}
	if _, err := essence.Convert[essence.Vector4d](essence.V2(1.0, 2.0)); err != nil {
		fmt.Println(err)
	}
}
