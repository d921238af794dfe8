// Package media turns images into (media type, base64) pairs for inline request parts.
//
// EncodeImageB64 reads a local file; the media type is guessed from the file
// extension and falls back to DefaultMediaType. EncodeImageURL downloads over
// https with a size limit and an image/* content-type check.
package media
