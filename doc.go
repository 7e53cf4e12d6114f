// Package hostbridge connects a real-time 3D simulation to an external
// rendering host that mirrors simulation scene state into platform-native
// graphics resources.
//
// # Overview
//
// The module is organized around two subsystems:
//
//   - [github.com/gogpu/hostbridge/bridge]: a synchronous, bidirectional
//     command dispatch bridge. Each direction has exactly one installed
//     table; commands carry opaque argument buffers the bridge never
//     interprets.
//   - [github.com/gogpu/hostbridge/format]: the engine pixel-format
//     enumeration and its translation onto the platform's native format
//     space, with capability-aware fallback.
//
// Supporting packages:
//
//   - resource: shared-texture and image-reference descriptors carried
//     across the bridge.
//   - command: command ids for both directions and their payload codecs.
//   - platform: registry used to select the single host implementation.
//   - compositor: a reference host that mirrors texture assets into a
//     gpucontext device or an in-memory store.
//   - session: the simulation-side client.
//
// # Quick Start
//
//	s := session.New()
//	if err := s.Start(platform.MustDefault()); err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	ref := resource.ImageReference{
//		Format: format.R8G8B8A8_UNorm,
//		Width:  64, Height: 64, Pitch: 256,
//		Data:   pixels,
//	}
//	if err := s.UploadTexture(uuid.New(), ref); err != nil {
//		log.Fatal(err)
//	}
//
// # Logging
//
// hostbridge is silent by default. Call [SetLogger] to route diagnostics to
// a [log/slog] handler.
package hostbridge
