package model

// Package model defines the domain data structures of a clip request: the
// immutable request built from the form, the trim window, the resolution set
// and the task handle the executor tracks while a request is in flight.
