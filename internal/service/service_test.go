package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/Klingon-tech/seedforge/internal/derive"
	"github.com/Klingon-tech/seedforge/pkg/types"
)

// fakePipeline returns a fixed secret after running the real input checks.
type fakePipeline struct {
	secret types.Hash
	err    error
	panics bool
	calls  int
}

func (f *fakePipeline) Secret(code, password string) (types.Hash, error) {
	f.calls++
	if f.panics {
		panic("boom")
	}
	if err := derive.ValidateInput(code, password); err != nil {
		return types.Hash{}, err
	}
	if f.err != nil {
		return types.Hash{}, f.err
	}
	return f.secret, nil
}

const (
	testCode     = "abcdefghijkmnopqr"
	testPassword = "password"
)

func mustSecret(t *testing.T, s string) types.Hash {
	t.Helper()
	h, err := types.HexToHash(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return h
}

func newFake(t *testing.T) *fakePipeline {
	t.Helper()
	return &fakePipeline{secret: mustSecret(t, "00000000000000000000000000000000ffeeddccbbaa99887766554433221101")}
}

func TestDeriveRawSecret(t *testing.T) {
	svc := New(newFake(t))
	got, err := svc.DeriveRawSecret(testCode, testPassword)
	if err != nil {
		t.Fatalf("DeriveRawSecret() error: %v", err)
	}
	if got != "00000000000000000000000000000000ffeeddccbbaa99887766554433221101" {
		t.Errorf("DeriveRawSecret() = %s", got)
	}
}

func TestDeriveBitcoinWIF(t *testing.T) {
	fake := &fakePipeline{}
	fake.secret[31] = 1
	svc := New(fake)

	got, err := svc.DeriveBitcoinWIF(testCode, testPassword)
	if err != nil {
		t.Fatalf("DeriveBitcoinWIF() error: %v", err)
	}
	if want := "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"; got != want {
		t.Errorf("DeriveBitcoinWIF() = %s, want %s", got, want)
	}
}

func TestDeriveBitcoinWIF_InvalidScalar(t *testing.T) {
	svc := New(&fakePipeline{}) // zero secret
	got, err := svc.DeriveBitcoinWIF(testCode, testPassword)
	if err == nil {
		t.Fatal("expected error for zero scalar")
	}
	if got != "" {
		t.Errorf("DeriveBitcoinWIF() returned %q alongside an error", got)
	}
	if err.Error() != derive.ErrInvalidScalar.Error() {
		t.Errorf("error = %q, want %q", err.Error(), derive.ErrInvalidScalar.Error())
	}
}

func TestDeriveHDWallet(t *testing.T) {
	svc := New(newFake(t))
	got, err := svc.DeriveHDWallet(testCode, testPassword)
	if err != nil {
		t.Fatalf("DeriveHDWallet() error: %v", err)
	}
	want := WalletResult{
		XPrv:     "xprv9s21ZrQH143K3GJpoapnV8SFfukcVBSfeCficPSGfubmSFDxo1kuHnLisriDvSnRRuL2Qrg5ggqHKNVpxR86QEC8w35uxmGoggxtQTPvfUu",
		Mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	}
	if got != want {
		t.Errorf("DeriveHDWallet() = %+v, want %+v", got, want)
	}
}

func TestInvalidInput_CollapsedMessage(t *testing.T) {
	svc := New(newFake(t))

	_, err := svc.DeriveRawSecret("short", testPassword)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != derive.ErrInvalidInput.Error() {
		t.Errorf("message = %q, want %q", err.Error(), derive.ErrInvalidInput.Error())
	}
	if errors.Is(err, derive.ErrInvalidInput) {
		t.Error("errors crossing the boundary should carry only the message")
	}
	if !strings.Contains(err.Error(), "Base58") || !strings.Contains(err.Error(), "16 characters") {
		t.Errorf("message %q should describe both rules", err.Error())
	}

	if _, err := svc.DeriveBitcoinWIF(testCode, "pass"); err == nil {
		t.Error("DeriveBitcoinWIF() should reject a short password")
	}
	if w, err := svc.DeriveHDWallet("abcdefghijklmnopq", testPassword); err == nil || w != (WalletResult{}) {
		t.Errorf("DeriveHDWallet() = %+v, %v; want empty result and error", w, err)
	}
}

func TestStretchFailure_Reported(t *testing.T) {
	fake := newFake(t)
	fake.err = derive.ErrStretchFailed
	svc := New(fake)

	if _, err := svc.DeriveRawSecret(testCode, testPassword); err == nil || err.Error() != "failed to generate hash" {
		t.Errorf("DeriveRawSecret() error = %v, want stretch failure message", err)
	}
}

func TestPanic_Recovered(t *testing.T) {
	svc := New(&fakePipeline{panics: true})

	out, err := svc.DeriveRawSecret(testCode, testPassword)
	if err == nil {
		t.Fatal("panic should surface as an error")
	}
	if out != "" {
		t.Errorf("DeriveRawSecret() returned %q alongside an error", out)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want panic value in message", err)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{derive.ErrInvalidInput, "invalid_input"},
		{derive.ErrStretchFailed, "stretch_failed"},
		{derive.ErrInvalidScalar, "invalid_scalar"},
		{derive.ErrMnemonic, "mnemonic_error"},
		{derive.ErrKeyDerivation, "key_derivation_error"},
		{errors.New("other"), "unknown"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestNewWithParams(t *testing.T) {
	if _, err := NewWithParams(derive.Params{}); err == nil {
		t.Error("NewWithParams() should reject zero params")
	}
	if _, err := NewWithParams(derive.LightParams()); err != nil {
		t.Errorf("NewWithParams(LightParams) error: %v", err)
	}
}

func TestService_RealPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("memory-hard stretch skipped in short mode")
	}
	svc, err := NewWithParams(derive.LightParams())
	if err != nil {
		t.Fatalf("NewWithParams() error: %v", err)
	}

	raw1, err := svc.DeriveRawSecret(testCode, testPassword)
	if err != nil {
		t.Fatalf("DeriveRawSecret() error: %v", err)
	}
	raw2, err := svc.DeriveRawSecret(testCode, testPassword)
	if err != nil {
		t.Fatalf("DeriveRawSecret() error: %v", err)
	}
	if raw1 != raw2 || len(raw1) != 64 {
		t.Errorf("DeriveRawSecret() = %s then %s, want equal 64-char values", raw1, raw2)
	}

	report, err := svc.Verify(testCode, testPassword)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if report.RawSecret != raw1 {
		t.Errorf("Verify().RawSecret = %s, want %s", report.RawSecret, raw1)
	}
	if !report.OK() {
		t.Errorf("Verify() checks failed: %+v", report.Checks)
	}
}
