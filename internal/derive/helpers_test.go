package derive

import "testing"

const (
	exampleCode     = "abcdefghijkmnopqr"
	examplePassword = "password"
)

// testParams are far below MinMemory so the pipeline tests stay fast.
// They are only reachable by constructing a Stretcher directly.
var testParams = Params{Memory: 256, Iterations: 1, Parallelism: 1}

func newTestDeriver(t *testing.T) *Deriver {
	t.Helper()
	return &Deriver{stretcher: &Stretcher{params: testParams}}
}

// hammingDistance counts differing bits between two equal-length slices.
func hammingDistance(a, b []byte) int {
	n := 0
	for i := range a {
		x := a[i] ^ b[i]
		for x != 0 {
			n += int(x & 1)
			x >>= 1
		}
	}
	return n
}
