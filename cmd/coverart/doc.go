// Command coverart extracts embedded cover art from MP3 and MP4-family audio
// files.
//
// Usage:
//
//	coverart extract song.mp3 book.m4b -o ./covers
//	coverart extract --stdout song.m4a > cover.jpg
//	coverart album ~/Music/*/
//	coverart boxes song.m4a
//	coverart config init
//	coverart version
//
// Settings are read from ~/.config/coverart/config.toml (see "coverart config
// init"); flags override file values.
package main
