// Package stdio implements a single-connection MCP transport over
// stdin/stdout. It is intended for embedding the server as a subprocess of
// an MCP client.
//
// Characteristics
//
//	Connection model : 1 process <-> 1 client
//	Framing          : newline delimited JSON-RPC 2.0 objects
//	Logging          : never on stdout; pass a stderr logger
//
// Example:
//
//	srv, err := cvserver.New(cvserver.WithMediaDir("media"))
//	if err != nil { log.Fatal(err) }
//	h := stdio.NewHandler(srv, stdio.WithLogger(logger))
//	if err := h.Serve(ctx); err != nil { log.Fatal(err) }
package stdio
