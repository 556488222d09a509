// Package hosted runs the HTTP router inside an event driven runtime.
//
// A hosted runtime hands the process one request event at a time instead
// of a listening socket. Adapter turns such an event into an *http.Request,
// drives the router with it and returns the status and headers as soon as
// the handler commits them. The body streams while the handler keeps
// running, so long lived SSE sessions work the same as on a socket.
package hosted
