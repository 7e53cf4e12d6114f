// Package compositor provides a reference host platform.
//
// A Compositor mirrors the simulation's texture assets. CPU images are
// translated to a native format, converted to RGBA8 (downscaled when larger
// than the maximum texture size) and handed to a TextureCreator; shared GPU
// textures are recorded by handle without taking ownership. Every upload is
// answered with a TextureUploadResult command.
//
// Importing the package registers the "headless" platform, which keeps
// textures in a MemoryStore. To upload into a gogpu window instead:
//
//	creator, err := compositor.FromDrawer(dc.AsTextureDrawer())
//	if err != nil {
//		return err
//	}
//	c := compositor.New(compositor.WithTextureCreator(creator))
package compositor
