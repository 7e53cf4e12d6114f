package compositor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/google/uuid"

	"github.com/gogpu/hostbridge/bridge"
	"github.com/gogpu/hostbridge/command"
	"github.com/gogpu/hostbridge/format"
	"github.com/gogpu/hostbridge/internal/pixconv"
)

// Session and asset errors.
var (
	// ErrNoSession is returned for asset commands outside a session.
	ErrNoSession = errors.New("compositor: no active session")

	// ErrSessionActive is returned by BeginSession during a session.
	ErrSessionActive = errors.New("compositor: session already active")

	// ErrUnknownAsset is returned when deleting an asset that does not exist.
	ErrUnknownAsset = errors.New("compositor: unknown asset")
)

// Asset describes one mirrored texture asset.
type Asset struct {
	ID uuid.UUID

	// Shared is true for textures owned by the simulation and referenced by
	// Handle. The compositor never destroys shared textures.
	Shared bool
	Handle uintptr

	// Texture is the texture created by the TextureCreator. Nil for shared
	// assets.
	Texture gpucontext.Texture

	Width  int
	Height int
	Layers int
	Mips   int

	// Requested is the engine format sent by the simulation; Format is the
	// format it resolved to and Native the platform format a GPU host would
	// back it with. They describe the host mapping only: uploaded textures
	// always hold the RGBA8 pixels produced by conversion.
	Requested format.PixelFormat
	Format    format.PixelFormat
	Native    format.NativeFormat
}

func (a *Asset) release() {
	if !a.Shared && a.Texture != nil {
		destroyTexture(a.Texture)
		a.Texture = nil
	}
}

// Compositor is a host platform that mirrors simulation texture assets.
// It implements bridge.Platform and platform.Platform.
//
// Commands may arrive from several goroutines; the asset map is guarded by a
// mutex that is never held while replying to the simulation.
type Compositor struct {
	opts options
	log  *slog.Logger

	mu      sync.Mutex
	ep      bridge.Endpoint
	session bool
	assets  map[uuid.UUID]*Asset
}

// New creates a compositor.
func New(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.creator == nil {
		o.creator = NewMemoryStore()
	}
	return &Compositor{
		opts:   o,
		log:    o.resolveLogger(),
		assets: make(map[uuid.UUID]*Asset),
	}
}

// Name returns the platform name.
func (c *Compositor) Name() string {
	return c.opts.name
}

// AppleGPU reports the capability flag used for format translation.
func (c *Compositor) AppleGPU() bool {
	return c.opts.appleGPU
}

// NativeTable implements bridge.Platform. Replies to the simulation are sent
// through ep.
func (c *Compositor) NativeTable(ep bridge.Endpoint) bridge.Table {
	c.mu.Lock()
	c.ep = ep
	c.mu.Unlock()

	return command.HostHandlers{
		command.BeginSession:                     c.beginSession,
		command.EndSession:                       c.endSession,
		command.CreateOrUpdateTextureAsset:       c.uploadTexture,
		command.CreateOrUpdateNativeTextureAsset: c.shareTexture,
		command.DeleteAsset:                      c.deleteAsset,
	}
}

// SessionActive reports whether a session has begun and not ended.
func (c *Compositor) SessionActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Asset returns a copy of the asset with the given id.
func (c *Compositor) Asset(id uuid.UUID) (Asset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.assets[id]
	if !ok {
		return Asset{}, false
	}
	return *a, true
}

// Len returns the number of live assets.
func (c *Compositor) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.assets)
}

func (c *Compositor) beginSession(bridge.Args) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session {
		return ErrSessionActive
	}
	c.session = true
	c.log.Info("compositor: session started", "platform", c.opts.name, "appleGPU", c.opts.appleGPU)
	return nil
}

func (c *Compositor) endSession(bridge.Args) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.session {
		return ErrNoSession
	}
	n := len(c.assets)
	for id, a := range c.assets {
		a.release()
		delete(c.assets, id)
	}
	c.session = false
	c.log.Info("compositor: session ended", "released", n)
	return nil
}

func (c *Compositor) uploadTexture(args bridge.Args) error {
	up, err := command.DecodeTextureUpload(args)
	if err != nil {
		return err
	}
	err = c.storeTexture(&up)
	c.reply(up.Asset, err)
	return err
}

func (c *Compositor) storeTexture(up *command.TextureUpload) error {
	tr, err := c.translate(up.Asset, up.Image.Format)
	if err != nil {
		return err
	}
	img, err := pixconv.ToNRGBA(&up.Image, c.opts.maxTextureSize)
	if err != nil {
		return err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w != int(up.Image.Width) || h != int(up.Image.Height) {
		c.log.Debug("compositor: texture downscaled",
			"asset", up.Asset, "from", fmt.Sprintf("%dx%d", up.Image.Width, up.Image.Height),
			"to", fmt.Sprintf("%dx%d", w, h))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.session {
		return ErrNoSession
	}

	prev := c.assets[up.Asset]
	if prev != nil && !prev.Shared && prev.Width == w && prev.Height == h {
		if u, ok := prev.Texture.(gpucontext.TextureUpdater); ok {
			if err := u.UpdateData(img.Pix); err != nil {
				return fmt.Errorf("compositor: update texture: %w", err)
			}
			prev.Requested, prev.Format, prev.Native = tr.Requested, tr.Format, tr.Native
			return nil
		}
	}

	tex, err := c.opts.creator.NewTextureFromRGBA(w, h, img.Pix)
	if err != nil {
		return fmt.Errorf("compositor: create texture: %w", err)
	}
	if prev != nil {
		prev.release()
	}
	c.assets[up.Asset] = &Asset{
		ID:        up.Asset,
		Texture:   tex,
		Width:     w,
		Height:    h,
		Layers:    1,
		Mips:      1,
		Requested: tr.Requested,
		Format:    tr.Format,
		Native:    tr.Native,
	}
	return nil
}

func (c *Compositor) shareTexture(args bridge.Args) error {
	nt, err := command.DecodeNativeTextureUpload(args)
	if err != nil {
		return err
	}
	err = c.referenceTexture(&nt)
	c.reply(nt.Asset, err)
	return err
}

func (c *Compositor) referenceTexture(nt *command.NativeTextureUpload) error {
	if err := nt.Texture.Validate(); err != nil {
		return err
	}
	tr, err := c.translate(nt.Asset, nt.Texture.Format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.session {
		return ErrNoSession
	}
	if prev := c.assets[nt.Asset]; prev != nil {
		prev.release()
	}
	c.assets[nt.Asset] = &Asset{
		ID:        nt.Asset,
		Shared:    true,
		Handle:    nt.Texture.Handle,
		Width:     int(nt.Texture.Width),
		Height:    int(nt.Texture.Height),
		Layers:    int(nt.Texture.ImageCount),
		Mips:      int(nt.Texture.MipCount),
		Requested: tr.Requested,
		Format:    tr.Format,
		Native:    tr.Native,
	}
	return nil
}

func (c *Compositor) deleteAsset(args bridge.Args) error {
	id, err := command.DecodeDeleteAsset(args)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.assets[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownAsset, id)
	}
	a.release()
	delete(c.assets, id)
	return nil
}

// translate resolves an engine format for this compositor's GPU.
func (c *Compositor) translate(id uuid.UUID, f format.PixelFormat) (format.Translation, error) {
	tr, err := format.Translate(f, c.opts.appleGPU)
	if err != nil {
		return tr, err
	}
	if tr.Adjusted() {
		c.log.Warn("compositor: texture format adjusted",
			"asset", id, "requested", tr.Requested, "format", tr.Format, "native", tr.Native)
	}
	return tr, nil
}

// reply reports an upload outcome to the simulation.
func (c *Compositor) reply(id uuid.UUID, uploadErr error) {
	if uploadErr != nil {
		c.log.Warn("compositor: texture upload failed", "asset", id, "err", uploadErr)
	}

	c.mu.Lock()
	ep := c.ep
	c.mu.Unlock()
	if ep == nil {
		return
	}

	res := command.UploadResult{Asset: id, Success: uploadErr == nil}
	if err := ep.SendTowardClient(command.TextureUploadResult, res.Args()); err != nil {
		c.log.Warn("compositor: upload result not delivered", "asset", id, "err", err)
	}
}

// Logf sends a log line to the simulation.
func (c *Compositor) Logf(level slog.Level, msg string, args ...any) error {
	c.mu.Lock()
	ep := c.ep
	c.mu.Unlock()
	if ep == nil {
		return bridge.ErrNotInstalled
	}
	l := command.Log{Level: level, Text: fmt.Sprintf(msg, args...)}
	return ep.SendTowardClient(command.LogMessage, l.Args())
}
