package hostbridge_test

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/hostbridge/command"
	"github.com/gogpu/hostbridge/compositor"
	"github.com/gogpu/hostbridge/format"
	"github.com/gogpu/hostbridge/resource"
	"github.com/gogpu/hostbridge/session"
)

func Example() {
	s := session.New(session.WithUploadHook(func(r command.UploadResult) {
		fmt.Println("uploaded:", r.Success)
	}))
	if err := s.Start(compositor.New()); err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	ref := resource.ImageReference{
		Format: format.B8G8R8A8_SRGB,
		Width:  2,
		Height: 2,
		Pitch:  8,
		Data:   make([]byte, 16),
	}
	if err := s.UploadTexture(uuid.New(), ref); err != nil {
		fmt.Println(err)
	}
	// Output:
	// uploaded: true
}

func Example_translate() {
	for _, apple := range []bool{true, false} {
		t, err := format.Translate(format.A2R10G10B10_XRSRGBPack32, apple)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(t.Outcome(), t.Format, t.Native)
	}
	// Output:
	// exact A2R10G10B10_XRSRGBPack32 BGR10_XR_sRGB
	// adjusted R16G16B16A16_SFloat RGBA16Float
}
