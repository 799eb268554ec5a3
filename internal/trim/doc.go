package trim

// Package trim runs the ffmpeg transcoder: cutting a clip out of a full
// download and extracting an audio track. Commands go through a Runner so the
// argument vectors can be verified without ffmpeg installed.
