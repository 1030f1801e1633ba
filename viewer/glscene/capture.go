package glscene

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/viewer"
	"github.com/go-gl/gl/v2.1/gl"
)

// Read the contents of the current context's surface.
func ReadPixels(width, height uint32) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	gl.Finish()
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if err := checkError("read pixels"); err != nil {
		return nil, err
	}

	flipImageY(img)
	return img, nil
}

// Make ctx current, read back its surface and write it as a PNG file.
func Capture(ctx graphics.Context, filename string) error {
	if !ctx.MakeCurrent() {
		return viewer.ErrMakeCurrentFailed
	}
	defer ctx.Release()

	w, h := ctx.SurfaceSize()
	img, err := ReadPixels(w, h)
	if err != nil {
		return err
	}
	return writePNG(img, filename)
}

// ScreenCapture writes the next rendered frame to a file when requested. Use
// Callback as a camera final draw callback and register the capture as an
// event handler to trigger it with the 'c' key.
type ScreenCapture struct {
	// Filename pattern; receives the frame number.
	Pattern string

	pending bool
}

// Create a screen capture writing to files named after pattern (e.g.
// "frame-%05d.png").
func NewScreenCapture(pattern string) *ScreenCapture {
	return &ScreenCapture{Pattern: pattern}
}

// Capture the next rendered frame.
func (sc *ScreenCapture) Request() {
	sc.pending = true
}

func (sc *ScreenCapture) Handle(ev viewer.Event, _ *viewer.Viewer) bool {
	if ev.Type != viewer.KeyPress || ev.Key != 'c' {
		return false
	}
	sc.Request()
	return true
}

func (sc *ScreenCapture) Callback(rc *viewer.RenderContext) error {
	if !sc.pending {
		return nil
	}
	sc.pending = false

	w, h := rc.State.Context.SurfaceSize()
	img, err := ReadPixels(w, h)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf(sc.Pattern, rc.Stamp.FrameNumber)
	if err = writePNG(img, filename); err != nil {
		return err
	}
	logger.Noticef("captured frame %d to %s", rc.Stamp.FrameNumber, filename)
	return nil
}

func writePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("glscene: could not encode %s: %w", filename, err)
	}
	return f.Close()
}

// OpenGL's origin is in the lower left corner.
func flipImageY(img *image.RGBA) {
	row := make([]uint8, img.Stride)
	sy := img.Bounds().Dy()
	for y := 0; y < sy/2; y++ {
		top := img.PixOffset(0, y)
		bottom := img.PixOffset(0, sy-y-1)
		copy(row, img.Pix[bottom:bottom+img.Stride])
		copy(img.Pix[bottom:bottom+img.Stride], img.Pix[top:top+img.Stride])
		copy(img.Pix[top:top+img.Stride], row)
	}
}
