package platform

// Package platform contains OS integration and filesystem glue: download
// directory discovery, artifact lookup and sidecar cleanup, filename
// sanitizing, and revealing results in the system file manager.
