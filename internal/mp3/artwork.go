package mp3

import (
	"io"

	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/picture"
	"github.com/simonhull/coverart/internal/types"
)

// extractArtwork returns the picture of the first APIC frame in the ID3v2 tag.
//
// Malformed tags end in types.ErrNoArtwork; only a failing reader produces
// another error.
func extractArtwork(r io.ReaderAt, size int64, path string) (*types.Artwork, error) {
	c := binutil.NewCursor(binutil.NewSafeReader(r, size, path), 0)

	art, err := scanFrames(c)
	if err != nil {
		if types.IsStructural(err) {
			return nil, types.ErrNoArtwork
		}
		return nil, err
	}
	return art, nil
}

func scanFrames(c *binutil.Cursor) (*types.Artwork, error) {
	header, err := readTagHeader(c)
	if err != nil {
		return nil, err
	}

	tagEnd := min(tagHeaderSize+int64(header.Size), c.Size())

	for c.Offset()+frameHeaderSize <= tagEnd {
		frame, err := readFrameHeader(c, header.Version)
		if err != nil {
			return nil, err
		}

		// Padding (null bytes indicate end of frames)
		if frame.ID[0] == 0 {
			break
		}

		if header.Version == 4 {
			frame.Size = resolveFrameSize(c, frame, tagEnd)
		}

		if int64(frame.Size) > c.Remaining() {
			return nil, &types.CorruptedFileError{
				Path:   c.Path(),
				Offset: c.Offset() - frameHeaderSize,
				Reason: "frame " + frame.ID + " runs past end of file",
			}
		}

		if frame.ID == "APIC" {
			return readAPIC(c, frame)
		}

		c.Skip(int64(frame.Size))
	}

	return nil, types.ErrNoArtwork
}

// readAPIC parses an APIC (Attached Picture) frame body under the cursor.
// Format:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type
//	[1 byte]              Picture type
//	[null-terminated]     Description
//	[remaining]           Picture data
func readAPIC(c *binutil.Cursor, frame FrameHeader) (*types.Artwork, error) {
	frameEnd := c.Offset() + int64(frame.Size)

	encoding, err := binutil.ReadValue[uint8](c, "APIC text encoding")
	if err != nil {
		return nil, err
	}

	// MIME type is always ISO-8859-1
	if _, err := c.ReadTerminated(1, frameEnd, "APIC MIME type"); err != nil {
		return nil, err
	}

	if c.Offset() >= frameEnd {
		return nil, &types.CorruptedFileError{
			Path:   c.Path(),
			Offset: c.Offset(),
			Reason: "APIC frame truncated after MIME type",
		}
	}
	c.Skip(1) // picture type

	if _, err := c.ReadTerminated(terminatorSize(encoding), frameEnd, "APIC description"); err != nil {
		return nil, err
	}

	data, err := c.ReadN(frameEnd-c.Offset(), "APIC picture data")
	if err != nil {
		return nil, err
	}

	art, ok := picture.NewArtwork(data)
	if !ok {
		return nil, types.ErrNoArtwork
	}
	return art, nil
}
