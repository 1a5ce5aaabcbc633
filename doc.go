// Package coverart extracts the embedded cover image from audio files.
//
// coverart reads the raw container layout directly instead of going through
// a tag library: the ID3v2 frame list of MP3 files and the ISO Base Media
// box tree of MP4-family files (M4A, M4B, AAC in MP4).
//
// # Quick Start
//
//	art, err := coverart.Extract("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(art) // JPEG 600x600, 48KB
//	os.WriteFile("cover"+art.Kind.Extension(), art.Data, 0o644)
//
// # Supported Formats
//
//   - MP3: first APIC frame of an ID3v2.3 or ID3v2.4 tag
//   - M4A/M4B/MP4: the covr item under moov/udta/meta/ilst
//
// # Image Recovery
//
// Payloads that do not start with a JPEG or PNG signature are searched for
// one. A JPEG span is cut at its end-of-image marker, and a marker is
// appended when the payload was truncated before it. Such artwork has
// Recovered set.
//
// # Error Handling
//
// Every "no picture" outcome, including malformed containers and unsupported
// extensions, matches ErrNoArtwork:
//
//	art, err := coverart.Extract(path)
//	switch {
//	case errors.Is(err, coverart.ErrNoArtwork):
//		// show a placeholder
//	case err != nil:
//		var readErr *coverart.ReadError
//		if errors.As(err, &readErr) {
//			// file missing or unreadable
//		}
//	}
//
// # Concurrency
//
// Extract keeps no shared state, so calls are independent. ExtractMany scans
// a batch in parallel and returns results in input order:
//
//	covers, err := coverart.ExtractMany(ctx, paths)
//
// AlbumArt picks the first audio file of a directory by name and extracts
// its cover.
package coverart
