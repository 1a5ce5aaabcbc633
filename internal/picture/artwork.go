package picture

import "github.com/simonhull/coverart/internal/types"

// NewArtwork runs candidate bytes through Validate and fills in kind, MIME
// type and dimensions. ok is false when the bytes hold no recognizable image.
func NewArtwork(candidate []byte) (*types.Artwork, bool) {
	img, kind, ok := Validate(candidate)
	if !ok {
		return nil, false
	}

	width, height := Dimensions(img, kind)
	return &types.Artwork{
		Data:      img,
		Kind:      kind,
		MIMEType:  kind.MIMEType(),
		Width:     width,
		Height:    height,
		Recovered: Sniff(candidate) == types.KindUnknown || len(img) != len(candidate),
	}, true
}
