// Package adapter implements the Adapter structural pattern: a client-facing
// capability bridged onto an incompatible vendor interface.
//
// What:
//
//   - MediaPlayer: the capability client code speaks — Play(format, file).
//   - AdvancedMediaPlayer: the incompatible vendor API with per-format
//     methods (PlayVLC, PlayMP4).
//   - MediaAdapter: translates Play calls into the matching vendor method.
//   - AudioPlayer: the client-facing player; handles mp3 natively and
//     reaches for an adapter for vlc and mp4.
//
// Why:
//   - Reuse an existing implementation behind the interface callers expect
//   - Keep format-translation logic out of the client player
//   - Contrast the soft failure path with the factory's hard one
//
// Failure contract:
//
//   - An unrecognized format is reported as a printed
//     "Unsupported format: <fmt>" notice, never an error. This soft path is
//     deliberate: playback requests are user input, not programming errors.
package adapter
