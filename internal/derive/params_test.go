package derive

import "testing"

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"default", DefaultParams(), false},
		{"light", LightParams(), false},
		{"zero iterations", Params{Memory: MinMemory, Iterations: 0, Parallelism: 1}, true},
		{"zero parallelism", Params{Memory: MinMemory, Iterations: 1, Parallelism: 0}, true},
		{"below memory floor", Params{Memory: MinMemory - 1, Iterations: 3, Parallelism: 1}, true},
		{"tiny memory", Params{Memory: 64, Iterations: 3, Parallelism: 4}, true},
		{"max lanes", Params{Memory: MinMemory, Iterations: 1, Parallelism: 255}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Memory != 65536 || p.Iterations != 3 || p.Parallelism != 4 {
		t.Errorf("DefaultParams() = %+v, want 64 MiB / 3 / 4", p)
	}
	if p.String() != "m=65536,t=3,p=4" {
		t.Errorf("String() = %s", p.String())
	}
}
