package server

// Server is the lifecycle contract for the transport servers this package
// manages. The persona board runs a single HTTP transport that carries the
// REST routes, the GraphQL endpoint, and static upload serving.
type Server interface {
	// RunServer starts accepting requests and blocks until the server
	// stops, either through Shutdown or a termination signal.
	RunServer()

	// Shutdown gracefully stops the server and releases the listener.
	Shutdown()
}
