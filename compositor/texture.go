package compositor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
)

var (
	// ErrNoTextureCreator is returned by FromDrawer when the draw context
	// cannot create textures.
	ErrNoTextureCreator = errors.New("compositor: draw context has no texture creator")

	// ErrTextureDestroyed is returned when updating a destroyed texture.
	ErrTextureDestroyed = errors.New("compositor: texture destroyed")
)

// TextureCreator creates GPU textures from tightly packed, non-premultiplied
// RGBA8 pixels. Textures that implement gpucontext.TextureUpdater are
// updated in place, and a Destroy() method releases them.
type TextureCreator = gpucontext.TextureCreator

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// FromDrawer returns the texture creator of a gpucontext draw context, such
// as the one returned by gogpu.Context.AsTextureDrawer().
func FromDrawer(dc gpucontext.TextureDrawer) (TextureCreator, error) {
	if dc == nil {
		return nil, ErrNoTextureCreator
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	return creator, nil
}

func destroyTexture(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// MemoryStore is a TextureCreator that keeps textures in CPU memory.
// It backs the headless platform and is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	live    int
	created int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewTextureFromRGBA implements TextureCreator. The data is copied.
func (s *MemoryStore) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("compositor: invalid texture size %dx%d", width, height)
	}
	if need := width * height * 4; len(data) != need {
		return nil, fmt.Errorf("compositor: texture data is %d bytes, need %d", len(data), need)
	}

	s.mu.Lock()
	s.live++
	s.created++
	s.mu.Unlock()

	return &MemoryTexture{
		store:  s,
		width:  width,
		height: height,
		pix:    append([]byte(nil), data...),
	}, nil
}

// Live returns the number of textures created and not yet destroyed.
func (s *MemoryStore) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Created returns the number of textures created since the store was made.
func (s *MemoryStore) Created() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}

var (
	_ TextureCreator            = (*MemoryStore)(nil)
	_ gpucontext.TextureUpdater = (*MemoryTexture)(nil)
)

// MemoryTexture is a texture held by a MemoryStore.
type MemoryTexture struct {
	store *MemoryStore

	mu        sync.Mutex
	width     int
	height    int
	pix       []byte
	updates   int
	destroyed bool
}

// Width returns the texture width in pixels.
func (t *MemoryTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *MemoryTexture) Height() int { return t.height }

// Pix returns a copy of the texture pixels.
func (t *MemoryTexture) Pix() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]byte(nil), t.pix...)
}

// Updates returns how many times UpdateData replaced the pixels.
func (t *MemoryTexture) Updates() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updates
}

// UpdateData replaces the texture pixels. The size must not change.
func (t *MemoryTexture) UpdateData(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return ErrTextureDestroyed
	}
	if len(data) != len(t.pix) {
		return fmt.Errorf("compositor: update is %d bytes, texture is %d", len(data), len(t.pix))
	}
	copy(t.pix, data)
	t.updates++
	return nil
}

// Destroy releases the texture. Calling it more than once has no effect.
func (t *MemoryTexture) Destroy() {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	t.destroyed = true
	t.pix = nil
	t.mu.Unlock()

	t.store.mu.Lock()
	t.store.live--
	t.store.mu.Unlock()
}

// Destroyed reports whether Destroy was called.
func (t *MemoryTexture) Destroyed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.destroyed
}
