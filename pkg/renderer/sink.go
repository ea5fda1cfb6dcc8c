package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// PixelSink receives the rendered image one pixel at a time in raster order,
// starting at the top-left pixel
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(linear core.Vec3) error
	End() error
}

// PPMWriter writes the plain-text P3 PPM format
type PPMWriter struct {
	out *bufio.Writer
}

// NewPPMWriter creates a PPM sink writing to w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{out: bufio.NewWriter(w)}
}

// Begin writes the three header lines
func (p *PPMWriter) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.out, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (p *PPMWriter) WritePixel(linear core.Vec3) error {
	rgb := ToRGB8(linear)
	_, err := fmt.Fprintf(p.out, "%d %d %d\n", rgb[0], rgb[1], rgb[2])
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	return p.out.Flush()
}

// ImageSink collects the pixels into an in-memory RGBA image
type ImageSink struct {
	img  *image.RGBA
	next int
}

// NewImageSink creates an empty image sink
func NewImageSink() *ImageSink {
	return &ImageSink{}
}

// Begin allocates the image
func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

// WritePixel stores the next pixel
func (s *ImageSink) WritePixel(linear core.Vec3) error {
	if s.img == nil {
		return errors.New("image sink used before Begin")
	}
	width := s.img.Bounds().Dx()
	if s.next >= width*s.img.Bounds().Dy() {
		return errors.New("image sink received more pixels than fit the image")
	}

	rgb := ToRGB8(linear)
	s.img.SetRGBA(s.next%width, s.next/width, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
	s.next++
	return nil
}

// End checks that the image was filled
func (s *ImageSink) End() error {
	if s.img == nil {
		return errors.New("image sink ended before Begin")
	}
	if expected := s.img.Bounds().Dx() * s.img.Bounds().Dy(); s.next != expected {
		return errors.Errorf("image sink received %d of %d pixels", s.next, expected)
	}
	return nil
}

// Image returns the collected image, nil before Begin
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// MultiSink forwards every call to each of its sinks in order
type MultiSink []PixelSink

// Begin implements PixelSink
func (m MultiSink) Begin(width, height int) error {
	for _, sink := range m {
		if err := sink.Begin(width, height); err != nil {
			return err
		}
	}
	return nil
}

// WritePixel implements PixelSink
func (m MultiSink) WritePixel(linear core.Vec3) error {
	for _, sink := range m {
		if err := sink.WritePixel(linear); err != nil {
			return err
		}
	}
	return nil
}

// End implements PixelSink
func (m MultiSink) End() error {
	for _, sink := range m {
		if err := sink.End(); err != nil {
			return err
		}
	}
	return nil
}
