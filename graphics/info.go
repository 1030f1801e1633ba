package graphics

import (
	"fmt"

	"github.com/achilleasa/eglview/egl"
)

// The max number of configs returned by QueryDisplay.
const maxQueriedConfigs = 64

// Attributes of an EGL config.
type ConfigInfo struct {
	ID        int32
	RedBits   int32
	GreenBits int32
	BlueBits  int32
	AlphaBits int32
	DepthBits int32
	Stencil   int32
}

// Information about the default EGL display.
type DisplayInfo struct {
	Major, Minor int32
	Vendor       string
	Version      string
	ClientAPIs   string

	// Configs compatible with headless contexts created with the
	// supplied traits.
	Configs []ConfigInfo
}

// Connect to the default display, collect information about it and the
// configs matching traits and disconnect.
func QueryDisplay(driver egl.Driver, traits Traits) (*DisplayInfo, error) {
	dpy := driver.GetDisplay()
	if dpy == egl.NoDisplay {
		return nil, queryError(driver, "eglGetDisplay")
	}

	major, minor, ok := driver.Initialize(dpy)
	if !ok {
		return nil, queryError(driver, "eglInitialize")
	}
	defer driver.Terminate(dpy)

	info := &DisplayInfo{
		Major:      major,
		Minor:      minor,
		Vendor:     driver.QueryString(dpy, egl.Vendor),
		Version:    driver.QueryString(dpy, egl.Version),
		ClientAPIs: driver.QueryString(dpy, egl.ClientAPIs),
	}

	configs, ok := driver.ChooseConfig(dpy, ConfigAttribs(traits), maxQueriedConfigs)
	if !ok {
		return nil, queryError(driver, "eglChooseConfig")
	}

	attr := func(cfg egl.Config, name int32) int32 {
		val, _ := driver.GetConfigAttrib(dpy, cfg, name)
		return val
	}
	for _, cfg := range configs {
		info.Configs = append(info.Configs, ConfigInfo{
			ID:        attr(cfg, egl.ConfigID),
			RedBits:   attr(cfg, egl.RedSize),
			GreenBits: attr(cfg, egl.GreenSize),
			BlueBits:  attr(cfg, egl.BlueSize),
			AlphaBits: attr(cfg, egl.AlphaSize),
			DepthBits: attr(cfg, egl.DepthSize),
			Stencil:   attr(cfg, egl.StencilSize),
		})
	}

	return info, nil
}

func queryError(driver egl.Driver, step string) error {
	code := driver.GetError()
	return fmt.Errorf("graphics: %s failed (error: %s; code %d)", step, egl.ErrorName(code), code)
}
