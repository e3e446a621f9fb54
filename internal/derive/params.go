package derive

import "fmt"

// MinMemory is the lowest Argon2id memory cost accepted, in KiB.
// It matches the Argon2 library default and keeps the stretch memory-hard.
const MinMemory = 19 * 1024

// KeyLength is the Argon2id output length in bytes.
const KeyLength = 32

// Params holds Argon2id cost parameters.
type Params struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns the standard stretch parameters: 64 MiB, 3 passes, 4 lanes.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 4,
	}
}

// LightParams returns the Argon2 library-default parameters: 19 MiB, 2 passes, 1 lane.
// Outputs differ from DefaultParams for the same inputs.
func LightParams() Params {
	return Params{
		Memory:      MinMemory,
		Iterations:  2,
		Parallelism: 1,
	}
}

// Validate checks that the parameters describe a memory-hard Argon2id run.
func (p Params) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", p.Iterations)
	}
	if p.Parallelism < 1 {
		return fmt.Errorf("parallelism must be >= 1, got %d", p.Parallelism)
	}
	if p.Memory < MinMemory {
		return fmt.Errorf("memory must be >= %d KiB, got %d", MinMemory, p.Memory)
	}
	if p.Memory < 8*uint32(p.Parallelism) {
		return fmt.Errorf("memory must be >= 8*parallelism KiB (%d), got %d", 8*uint32(p.Parallelism), p.Memory)
	}
	return nil
}

// String renders the parameters in PHC form.
func (p Params) String() string {
	return fmt.Sprintf("m=%d,t=%d,p=%d", p.Memory, p.Iterations, p.Parallelism)
}
