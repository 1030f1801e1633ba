package graphics

import "github.com/achilleasa/eglview/egl"

// A fake EGL driver that records calls and can be told to fail a step.
type mockDriver struct {
	failStep   string
	numConfigs int

	display egl.Display
	config  egl.Config
	surface egl.Surface
	context egl.Context

	calls         []string
	terminated    int
	lastError     int32
	lastBoundCtx  egl.Context
	pbufferAttrs  egl.Attribs
	chooseAttrs   egl.Attribs
	createdCtxNum int
}

func newMockDriver() *mockDriver {
	return &mockDriver{
		numConfigs: 1,
		display:    egl.Display(1),
		config:     egl.Config(2),
		surface:    egl.Surface(3),
		context:    egl.Context(4),
		lastError:  egl.Success,
	}
}

func (d *mockDriver) fail(step string, code int32) bool {
	d.calls = append(d.calls, step)
	if d.failStep == step {
		d.lastError = code
		return true
	}
	return false
}

func (d *mockDriver) GetDisplay() egl.Display {
	if d.fail("GetDisplay", egl.BadDisplay) {
		return egl.NoDisplay
	}
	return d.display
}

func (d *mockDriver) Initialize(egl.Display) (int32, int32, bool) {
	if d.fail("Initialize", egl.NotInitialized) {
		return 0, 0, false
	}
	return 1, 5, true
}

func (d *mockDriver) ChooseConfig(_ egl.Display, attribs egl.Attribs, maxConfigs int) ([]egl.Config, bool) {
	d.chooseAttrs = attribs
	if d.fail("ChooseConfig", egl.BadAttribute) {
		return nil, false
	}
	n := d.numConfigs
	if n > maxConfigs {
		n = maxConfigs
	}
	cfgs := make([]egl.Config, n)
	for i := range cfgs {
		cfgs[i] = d.config
	}
	return cfgs, true
}

func (d *mockDriver) GetConfigAttrib(_ egl.Display, _ egl.Config, attr int32) (int32, bool) {
	if attr == egl.ConfigID {
		return 7, true
	}
	if val, ok := d.chooseAttrs.Get(attr); ok {
		return val, true
	}
	return 0, true
}

func (d *mockDriver) CreatePbufferSurface(_ egl.Display, _ egl.Config, attribs egl.Attribs) egl.Surface {
	d.pbufferAttrs = attribs
	if d.fail("CreatePbufferSurface", egl.BadAlloc) {
		return egl.NoSurface
	}
	return d.surface
}

func (d *mockDriver) BindAPI(uint32) bool {
	return !d.fail("BindAPI", egl.BadParameter)
}

func (d *mockDriver) CreateContext(egl.Display, egl.Config, egl.Context, egl.Attribs) egl.Context {
	if d.fail("CreateContext", egl.BadMatch) {
		return egl.NoContext
	}
	d.createdCtxNum++
	return d.context
}

func (d *mockDriver) MakeCurrent(_ egl.Display, _, _ egl.Surface, ctx egl.Context) bool {
	if d.fail("MakeCurrent", egl.BadContext) {
		return false
	}
	d.lastBoundCtx = ctx
	return true
}

func (d *mockDriver) DestroySurface(egl.Display, egl.Surface) bool {
	return !d.fail("DestroySurface", egl.BadSurface)
}

func (d *mockDriver) DestroyContext(egl.Display, egl.Context) bool {
	return !d.fail("DestroyContext", egl.BadContext)
}

func (d *mockDriver) Terminate(egl.Display) bool {
	d.calls = append(d.calls, "Terminate")
	d.terminated++
	return true
}

func (d *mockDriver) QueryString(_ egl.Display, name int32) string {
	switch name {
	case egl.Vendor:
		return "Mock"
	case egl.Version:
		return "1.5 Mock"
	case egl.ClientAPIs:
		return "OpenGL OpenGL_ES"
	}
	return ""
}

func (d *mockDriver) GetError() int32 {
	code := d.lastError
	d.lastError = egl.Success
	return code
}

func (d *mockDriver) called(name string) int {
	count := 0
	for _, c := range d.calls {
		if c == name {
			count++
		}
	}
	return count
}
