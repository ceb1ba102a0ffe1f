// FILE: internal/transport/transport.go
package transport

// View abstracts display/output operations
type View interface {
	ShowWelcome()
	DisplayBoard(lines []string)
	ShowMessage(msg string)
	ShowRejection(err error)
	ShowFarewell()
	ShowVictory(moves, minimum int)
}

// LineReader blocks until the player enters one line.
// It returns io.EOF when no more input will arrive.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}
