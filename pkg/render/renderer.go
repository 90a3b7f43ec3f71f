package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-corridor/internal/logging"
	"github.com/leterax/go-corridor/internal/openglhelper"
	"github.com/leterax/go-corridor/pkg/corridor"
)

// ErrTextureLoad wraps failures to load one of the wall textures.
var ErrTextureLoad = errors.New("texture failed to load")

// TextureLoadMessage is shown to the user when a wall texture cannot be loaded.
const TextureLoadMessage = `Sorry, your textures did not load correctly.
Please make sure they are spelled correctly and the texture
files are in the specified location.`

// Renderer draws the four hallways and drives the frame loop.
type Renderer struct {
	window *openglhelper.Window
	camera *corridor.Camera
	log    logging.Logger

	shader   *openglhelper.Shader
	segment  *openglhelper.Mesh
	textures [corridor.Legs]*openglhelper.Texture
	models   [corridor.Legs]mgl32.Mat4

	lastLeg   int
	lastPhase corridor.Phase
}

// NewRenderer opens the window and uploads the shader, the segment mesh
// and the wall textures. The animation clock starts once everything is loaded.
func NewRenderer(cfg corridor.Config, log logging.Logger) (*Renderer, error) {
	path, err := corridor.NewPath(cfg)
	if err != nil {
		return nil, err
	}

	window, err := openglhelper.NewWindow(WindowWidth, WindowHeight, WindowTitle, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.Infof("OpenGL version: %s", window.GLVersion())

	r := &Renderer{
		window:  window,
		log:     log,
		models:  corridor.ModelMatrices(),
		lastLeg: -1,
	}

	shader, err := openglhelper.LoadShaderFromFiles(VertexShaderFile, FragmentShaderFile)
	if err != nil {
		r.Cleanup()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	if err := r.loadTextures(cfg.Textures); err != nil {
		r.window.RequestClose()
		r.Cleanup()
		return nil, err
	}

	segment, err := openglhelper.NewMesh(corridor.SegmentVertices, corridor.SegmentIndices)
	if err != nil {
		r.Cleanup()
		return nil, fmt.Errorf("failed to create corridor segment: %w", err)
	}
	r.segment = segment

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)

	width, height := window.Size()
	r.camera = corridor.NewCamera(path, corridor.NewClock(), width, height)
	window.SetResizeCallback(r.framebufferSizeCallback)

	return r, nil
}

// loadTextures uploads each distinct texture file once and assigns it to its legs.
func (r *Renderer) loadTextures(files [corridor.Legs]string) error {
	loaded := make(map[string]*openglhelper.Texture, corridor.Legs)
	for leg, file := range files {
		if tex, ok := loaded[file]; ok {
			r.textures[leg] = tex
			continue
		}

		tex, err := openglhelper.LoadTexture(file)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTextureLoad, err)
		}
		r.log.Debugf("loaded texture %s (%dx%d) for leg %d", file, tex.Width, tex.Height, leg)

		loaded[file] = tex
		r.textures[leg] = tex
	}
	return nil
}

// render draws one frame from the camera's current pose
func (r *Renderer) render() {
	r.window.Clear(ClearColor)

	r.shader.Use()
	r.shader.SetInt(SamplerUniform, WallTextureUnit)

	view := r.camera.ViewMatrix()
	projection := r.camera.ProjectionMatrix()

	for leg := range corridor.Legs {
		r.shader.SetMat4(ModelViewUniform, view.Mul4(r.models[leg]))
		r.shader.SetMat4(ProjectionUniform, projection)
		r.textures[leg].Bind(WallTextureUnit)
		r.segment.Draw()
	}
}

// trackPhase logs every leg or phase change.
func (r *Renderer) trackPhase(pose corridor.Pose) {
	if pose.Leg == r.lastLeg && pose.Phase == r.lastPhase {
		return
	}
	r.lastLeg = pose.Leg
	r.lastPhase = pose.Phase
	r.log.Debugf("leg %d: %s", pose.Leg, pose.Phase)
}

// Run starts the main rendering loop and releases all resources when the window closes
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		r.trackPhase(r.camera.Update())

		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	deleted := make(map[*openglhelper.Texture]bool, corridor.Legs)
	for i, tex := range r.textures {
		if tex != nil && !deleted[tex] {
			tex.Delete()
			deleted[tex] = true
		}
		r.textures[i] = nil
	}

	if r.segment != nil {
		r.segment.Delete()
		r.segment = nil
	}

	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}

	if r.window != nil {
		r.window.Close()
		r.window = nil
	}
}

func (r *Renderer) framebufferSizeCallback(width, height int) {
	if !r.camera.UpdateProjectionMatrix(width, height) {
		return
	}
	r.window.OnResize(width, height)
	r.log.Debugf("viewport resized to %dx%d", width, height)
}
