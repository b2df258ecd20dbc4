package replex

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasRegion locates a named image inside an atlas page.
type AtlasRegion struct {
	Page int
	Rect image.Rectangle
}

// Atlas holds packed page images and the named regions inside them. Widgets
// draw atlas images through Surface.DrawImage.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]AtlasRegion
}

// Region returns the region registered under name.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int { return len(a.regions) }

// Image returns the sub-image for name, or nil when the name or its page is
// unknown. Drawing a nil image is a no-op.
func (a *Atlas) Image(name string) *ebiten.Image {
	r, ok := a.regions[name]
	if !ok || r.Page >= len(a.Pages) || a.Pages[r.Page] == nil {
		return nil
	}
	return a.Pages[r.Page].SubImage(r.Rect).(*ebiten.Image)
}

// LoadAtlas parses TexturePacker JSON and associates the given page images.
// Both the hash format (one "frames" object) and the array format
// ("textures" with per-page frames) are accepted. Rotated frames are
// rejected since surfaces only blit axis-aligned images.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var doc struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("replex: parse atlas: %w", err)
	}

	a := &Atlas{Pages: pages, regions: make(map[string]AtlasRegion)}
	switch {
	case doc.Textures != nil:
		var textures []struct {
			Frames map[string]atlasFrame `json:"frames"`
		}
		if err := json.Unmarshal(doc.Textures, &textures); err != nil {
			return nil, fmt.Errorf("replex: parse atlas textures: %w", err)
		}
		for i, tex := range textures {
			if err := a.addFrames(tex.Frames, i); err != nil {
				return nil, err
			}
		}
	case doc.Frames != nil:
		var frames map[string]atlasFrame
		if err := json.Unmarshal(doc.Frames, &frames); err != nil {
			return nil, fmt.Errorf("replex: parse atlas frames: %w", err)
		}
		if err := a.addFrames(frames, 0); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("replex: parse atlas: neither \"frames\" nor \"textures\" key")
	}
	return a, nil
}

type atlasFrame struct {
	Frame struct {
		X, Y, W, H int
	} `json:"frame"`
	Rotated bool `json:"rotated"`
}

func (a *Atlas) addFrames(frames map[string]atlasFrame, page int) error {
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("replex: atlas frame %q is rotated", name)
		}
		r := f.Frame
		a.regions[name] = AtlasRegion{Page: page, Rect: image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)}
	}
	return nil
}
