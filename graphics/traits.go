package graphics

import "fmt"

// Default dimensions.
const (
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultPbufferWidth  = 256
	DefaultPbufferHeight = 256

	// Upper bound for any surface or viewport dimension.
	MaxDimension = 16384
)

// Traits describes the requested surface of a graphics context.
type Traits struct {
	// Viewport dims reported to the camera.
	Width  uint32
	Height uint32

	// Internal off-screen surface dims. These are independent of the
	// viewport; headless contexts always render at this resolution.
	PbufferWidth  uint32
	PbufferHeight uint32

	// Requested channel sizes.
	RedBits   int32
	GreenBits int32
	BlueBits  int32
	DepthBits int32

	// Window title for native contexts.
	Title string
}

// Get the default traits: a 640x480 viewport backed by a 256x256 RGB8
// surface with an 8-bit depth buffer.
func DefaultTraits() Traits {
	return Traits{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		PbufferWidth:  DefaultPbufferWidth,
		PbufferHeight: DefaultPbufferHeight,
		RedBits:       8,
		GreenBits:     8,
		BlueBits:      8,
		DepthBits:     8,
		Title:         "eglview",
	}
}

// Validate traits.
func (t Traits) Validate() error {
	if t.Width == 0 || t.Height == 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidTraits, t.Width, t.Height)
	}
	if t.PbufferWidth == 0 || t.PbufferHeight == 0 {
		return fmt.Errorf("%w: pbuffer %dx%d", ErrInvalidTraits, t.PbufferWidth, t.PbufferHeight)
	}
	for _, dim := range []uint32{t.Width, t.Height, t.PbufferWidth, t.PbufferHeight} {
		if dim > MaxDimension {
			return fmt.Errorf("%w: dimension %d exceeds %d", ErrInvalidTraits, dim, MaxDimension)
		}
	}
	return nil
}
