package server

// Server is one listener managed by [NewServer]. RunServer blocks until the
// listener stops; Shutdown drains it.
type Server interface {
	RunServer()
	Shutdown()
}
