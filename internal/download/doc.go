package download

// Package download implements the media half of a clip request: it asks the
// configured extraction engine for the stream, finds the produced file,
// renames it after the media title and hands trimmed requests to the
// transcoder. Partial artifacts are removed on every exit path.
