package openglhelper

import (
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/leterax/go-corridor/internal/assets"
)

// Anisotropic filtering enums, core since OpenGL 4.6.
const (
	textureMaxAnisotropy    = 0x84FE
	maxTextureMaxAnisotropy = 0x84FF
)

// Texture is a 2D texture living on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
	Path   string
}

// LoadTexture decodes an image file and uploads it as a repeating,
// mipmapped texture with trilinear and anisotropic filtering.
func LoadTexture(path string) (*Texture, error) {
	img, err := assets.DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(img, path), nil
}

// NewTexture uploads img, which must already be bottom-row first.
func NewTexture(img *image.RGBA, name string) *Texture {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	var maxAniso float32
	gl.GetFloatv(maxTextureMaxAnisotropy, &maxAniso)
	if maxAniso > 1 {
		gl.TexParameterf(gl.TEXTURE_2D, textureMaxAnisotropy, maxAniso)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{
		ID:     id,
		Width:  width,
		Height: height,
		Path:   name,
	}
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
