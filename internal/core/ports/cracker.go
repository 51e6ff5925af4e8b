// internal/core/ports/cracker.go
package ports

import "context"

// AttackModeStraight is the dictionary (straight) attack mode.
const AttackModeStraight = 0

// CrackRequest describes one invocation of the cracking engine.
type CrackRequest struct {
	HashMode   string
	AttackMode int
	HashFile   string
	Wordlist   string
	Show       bool // ask the engine to print already-cracked results
}

// CrackOutput is the raw outcome of an engine run.
type CrackOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Cracker runs a wordlist against a hash file.
//
// A non-zero ExitCode is reported through CrackOutput with a nil error; the
// error is reserved for failures to run the engine at all (missing binary,
// cancelled context).
type Cracker interface {
	// Name retorna el nombre del motor
	Name() string

	// Crack ejecuta el motor y espera a que termine
	Crack(ctx context.Context, req CrackRequest) (CrackOutput, error)
}
