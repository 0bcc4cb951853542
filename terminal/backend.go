package terminal

// Backend abstracts platform-specific terminal access
// Implementations handle raw mode, size queries, and resize notification
type Backend interface {
	// Init puts the terminal into raw mode
	Init() error

	// Fini restores the previous terminal mode. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Write sends raw bytes to the terminal
	Write(p []byte) (int, error)

	// SetResizeHandler registers a callback invoked on terminal resize
	SetResizeHandler(handler func(width, height int))
}
