// Package session drives a bridge from the simulation side.
//
// A Session owns a bridge, installs the simulation's client table, performs
// the handshake with a platform, and sends host commands with typed
// arguments:
//
//	s := session.New(session.WithUploadHook(func(r command.UploadResult) {
//		if !r.Success {
//			// fall back to a placeholder texture
//		}
//	}))
//	if err := s.Start(compositor.New()); err != nil {
//		return err
//	}
//	defer s.Close()
//
//	err := s.UploadTexture(assetID, img)
//
// Log lines sent by the platform are written to the session logger at the
// level the platform chose.
package session
