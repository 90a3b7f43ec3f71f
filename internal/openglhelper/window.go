package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1) // Enable vsync
	} else {
		glfw.SwapInterval(0) // Disable vsync
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return &Window{
		glfwWindow: glfwWindow,
		width:      fbWidth,
		height:     fbHeight,
		title:      title,
	}, nil
}

// GLVersion returns the version string of the current OpenGL context.
func (w *Window) GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Clear clears the colour and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// RequestClose asks the frame loop to stop after the current frame.
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
}

// Close destroys the window and releases GLFW
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetResizeCallback registers fn for framebuffer size changes.
func (w *Window) SetResizeCallback(fn func(width, height int)) {
	w.glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}
