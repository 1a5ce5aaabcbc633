package m4a

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/picture"
	"github.com/simonhull/coverart/internal/types"
)

// covrPath is the fixed chain of atoms leading to the cover art list item.
var covrPath = []string{"moov", "udta", "meta", "ilst", "covr"}

// data atom layout inside covr:
//
//	[4 bytes] size
//	[4 bytes] "data"
//	[4 bytes] version + flags (type indicator)
//	[4 bytes] locale
//	[remaining] image bytes
const dataHeaderSize = 16

// extractArtwork reads the covr atom and returns the image it carries.
// Navigates: moov → udta → meta → ilst → covr.
//
// Malformed or missing atoms end in types.ErrNoArtwork; only a failing
// reader produces another error.
func extractArtwork(r io.ReaderAt, size int64, path string) (*types.Artwork, error) {
	sr := binutil.NewSafeReader(r, size, path)

	art, err := readCover(sr)
	if err != nil {
		if types.IsStructural(err) || errors.Is(err, types.ErrNoArtwork) {
			return nil, types.ErrNoArtwork
		}
		return nil, err
	}
	return art, nil
}

func readCover(sr *binutil.SafeReader) (*types.Artwork, error) {
	covr, err := findPath(sr, 0, sr.Size(), covrPath...)
	if err != nil {
		return nil, err
	}

	body := make([]byte, covr.DataSize())
	if err := sr.ReadAt(body, covr.DataOffset(), "covr body"); err != nil {
		return nil, err
	}

	art, ok := picture.NewArtwork(coverPayload(body))
	if !ok {
		return nil, types.ErrNoArtwork
	}
	return art, nil
}

// coverPayload strips the data atom header from a covr body. Bodies that do
// not start with a data atom are returned whole for marker recovery.
func coverPayload(body []byte) []byte {
	if len(body) < dataHeaderSize || !bytes.Equal(body[4:8], []byte("data")) {
		return body
	}

	end := len(body)
	if n := int(binary.BigEndian.Uint32(body[0:4])); n >= dataHeaderSize && n <= end {
		end = n
	}
	return body[dataHeaderSize:end]
}
