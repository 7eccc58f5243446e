// Command mat3demo builds a 2D transform from flags and prints it, its
// inverse, and optionally its GPU uniform encoding.
//
// Transforms compose in flag order: scale, then rotate, then translate.
//
//	mat3demo -scale 2,3 -rotate 90 -translate 10,0 -point 1,1 -uniform
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/vecmath"
	"github.com/gogpu/vecmath/uniform"
)

func main() {
	var (
		scale     = flag.String("scale", "1,1", "scale factors x,y")
		rotate    = flag.Float64("rotate", 0, "rotation in degrees")
		translate = flag.String("translate", "0,0", "translation x,y")
		point     = flag.String("point", "", "optional point x,y to transform")
		lang      = flag.String("lang", "en", "BCP 47 language tag for number formatting")
		dump      = flag.Bool("uniform", false, "print the mat3x3<f32> uniform bytes")
		spirv     = flag.Bool("spirv", false, "compile the transform shader and report its size")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		vecmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid -lang: %v", err)
	}
	p := message.NewPrinter(tag)

	sx, sy, err := parsePair(*scale)
	if err != nil {
		log.Fatalf("Invalid -scale: %v", err)
	}
	tx, ty, err := parsePair(*translate)
	if err != nil {
		log.Fatalf("Invalid -translate: %v", err)
	}

	m := vecmath.NewMatrix3[float64]()
	m.Scale(sx, sy)
	m.Rotate(*rotate)
	m.TranslateV(vecmath.V2(tx, ty))

	p.Println("transform:")
	printMatrix(p, m)

	inv, det := m.Inverse()
	p.Printf("determinant: %.6f\n", det)
	if det == 0 {
		p.Println("inverse: singular")
	} else {
		p.Println("inverse:")
		printMatrix(p, inv)
	}

	if *point != "" {
		x, y, err := parsePair(*point)
		if err != nil {
			log.Fatalf("Invalid -point: %v", err)
		}
		q := m.TransformPoint(vecmath.V2(x, y))
		p.Printf("point (%.4f, %.4f) -> (%.4f, %.4f)\n", x, y, q.X, q.Y)
	}

	if *dump {
		buf := uniform.Pack(vecmath.Convert[float32](m))
		fmt.Print(hex.Dump(buf[:]))
	}

	if *spirv {
		words, err := uniform.CompileShader(uniform.NewLayout())
		if err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
		p.Printf("transform shader: %d SPIR-V words\n", len(words))
	}
}

func printMatrix(p *message.Printer, m vecmath.DMat3) {
	for i := 0; i < 3; i++ {
		r := m.Row(i)
		p.Printf("  | %10.4f %10.4f %10.4f |\n", r.X, r.Y, r.Z)
	}
}

func parsePair(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
