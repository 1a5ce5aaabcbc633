package coverart_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/require"
)

// makeJPEG returns an n-byte buffer that starts with a JPEG signature and
// ends with an EOI marker.
func makeJPEG(n int) []byte {
	data := make([]byte, n)
	copy(data, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'})
	for i := 10; i < n-2; i++ {
		data[i] = byte(i % 251)
	}
	data[n-2], data[n-1] = 0xFF, 0xD9
	return data
}

// makePNG returns an n-byte buffer starting with a PNG signature and a 1x1
// IHDR chunk.
func makePNG(n int) []byte {
	data := make([]byte, n)
	copy(data, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	copy(data[8:], []byte{0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1})
	for i := 24; i < n; i++ {
		data[i] = byte(i % 253)
	}
	return data
}

// buildMP3 creates an ID3v2.3 tag holding one APIC frame (frameSize overrides
// the declared frame size when non-zero), followed by a few audio bytes.
func buildMP3(picture []byte, frameSize uint32) []byte {
	body := &bytes.Buffer{}
	body.WriteByte(0x00) // ISO-8859-1
	body.WriteString("image/jpeg")
	body.WriteByte(0x00)
	body.WriteByte(0x03) // front cover
	body.WriteString("Cover")
	body.WriteByte(0x00)
	body.Write(picture)

	if frameSize == 0 {
		frameSize = uint32(body.Len())
	}

	frame := &bytes.Buffer{}
	frame.WriteString("APIC")
	binary.Write(frame, binary.BigEndian, frameSize)
	frame.Write([]byte{0x00, 0x00})
	frame.Write(body.Bytes())

	tagSize := uint32(frame.Len())
	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{0x03, 0x00, 0x00})
	buf.Write([]byte{
		byte(tagSize>>21) & 0x7F,
		byte(tagSize>>14) & 0x7F,
		byte(tagSize>>7) & 0x7F,
		byte(tagSize) & 0x7F,
	})
	buf.Write(frame.Bytes())
	buf.Write([]byte{0xFF, 0xFB, 0x90, 0x00})
	return buf.Bytes()
}

// writeTaggedMP3 writes an MP3 whose tag is produced by a real ID3 writer.
func writeTaggedMP3(t testing.TB, dir, name string, picture []byte, mime string) string {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle("Track")
	tag.SetArtist("Artist")
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime,
		PictureType: id3v2.PTFrontCover,
		Description: "Front",
		Picture:     picture,
	})

	buf := &bytes.Buffer{}
	_, err := tag.WriteTo(buf)
	require.NoError(t, err)
	buf.Write([]byte{0xFF, 0xFB, 0x90, 0x00})

	return writeFile(t, dir, name, buf.Bytes())
}

func atom(atomType string, data []byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(8+len(data)))
	buf.WriteString(atomType)
	buf.Write(data)
	return buf.Bytes()
}

// dataAtom wraps image bytes in a covr data atom.
func dataAtom(image []byte) []byte {
	return atom("data", append([]byte{0, 0, 0, 0x0E, 0, 0, 0, 0}, image...))
}

// buildM4A nests covrBody under ftyp + moov/udta/meta/ilst/covr.
func buildM4A(covrBody []byte) []byte {
	meta := atom("meta", append([]byte{0, 0, 0, 0}, atom("ilst", atom("covr", covrBody))...))
	moov := atom("moov", atom("udta", meta))

	buf := &bytes.Buffer{}
	buf.Write(atom("ftyp", []byte("M4A \x00\x00\x00\x00M4A ")))
	buf.Write(moov)
	buf.Write(atom("mdat", []byte{0x01, 0x02, 0x03, 0x04}))
	return buf.Bytes()
}

func writeFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
