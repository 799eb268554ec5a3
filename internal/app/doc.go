// Package app runs clip requests end to end. The Executor validates a
// request, drives the download and transcript services, reports the result
// through a Notifier and tracks in-flight requests so the UI never blocks.
package app
