package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

func stubSecret(t *testing.T, secret string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(secret), nil }
	t.Cleanup(func() { readPassword = old })
}

func TestSetCreds_OORTOverride(t *testing.T) {
	app, notifier := newTestApp(t)
	stubSecret(t, "supersecret")

	ctx := context.Background()
	app.reader = bufio.NewReader(strings.NewReader(strings.Join([]string{
		"MYKEY",
		"https://custom.oortech.com",
		"mybucket",
	}, "\n") + "\n"))

	if err := app.SetCreds(ctx, []string{"oort"}); err != nil {
		t.Fatalf("SetCreds: %v", err)
	}

	if !app.oortCreds.IsUsingOverride(ctx) {
		t.Fatal("override not stored")
	}
	got := app.oortCreds.Get(ctx)
	if got.AccessKeyID != "MYKEY" || got.SecretAccessKey != "supersecret" ||
		got.Endpoint != "https://custom.oortech.com" || got.Bucket != "mybucket" {
		t.Fatalf("creds = %+v", got)
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("successes = %v", notifier.successes)
	}
}

func TestSetCreds_RejectsIncompleteSet(t *testing.T) {
	app, notifier := newTestApp(t)
	stubSecret(t, "supersecret")

	ctx := context.Background()
	// empty region
	app.reader = bufio.NewReader(strings.NewReader("MYKEY\n\nmybucket\n"))

	if err := app.SetCreds(ctx, []string{"aws"}); err == nil {
		t.Fatal("want validation error, got nil")
	}
	if app.awsCreds.IsUsingOverride(ctx) {
		t.Fatal("incomplete credentials were stored")
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("errors = %v", notifier.errors)
	}
}

func TestResetCreds_RevertsToDefaults(t *testing.T) {
	app, _ := newTestApp(t)
	stubSecret(t, "supersecret")

	ctx := context.Background()
	app.reader = bufio.NewReader(strings.NewReader("MYKEY\nhttps://e.example\nmybucket\n"))
	if err := app.SetCreds(ctx, []string{"oort"}); err != nil {
		t.Fatal(err)
	}

	if err := app.ResetCreds(ctx, []string{"oort"}); err != nil {
		t.Fatalf("ResetCreds: %v", err)
	}
	if app.oortCreds.IsUsingOverride(ctx) {
		t.Fatal("override still present after reset")
	}
}

func TestCreds_MasksSecrets(t *testing.T) {
	app, _ := newTestApp(t)
	var out bytes.Buffer
	app.out = &out

	if err := app.Creds(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "supersecret") {
		t.Fatal("secret leaked to output")
	}
	if !strings.Contains(out.String(), "AWS") || !strings.Contains(out.String(), "OORT") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestMode_ToggleAndReport(t *testing.T) {
	app, notifier := newTestApp(t)
	ctx := context.Background()

	if err := app.Mode(ctx, []string{"aws"}); err != nil {
		t.Fatalf("Mode: %v", err)
	}
	if app.modes.UseReal(ctx, storage.ProviderAWS) {
		t.Fatal("toggle did not switch aws to simulated")
	}
	if app.modes.UseReal(ctx, storage.ProviderOORT) != true {
		t.Fatal("oort mode changed unexpectedly")
	}
	if len(notifier.infos) != 1 || !strings.Contains(notifier.infos[0], "simulated") {
		t.Fatalf("infos = %v", notifier.infos)
	}

	var out bytes.Buffer
	app.out = &out
	if err := app.Mode(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "simulated") || !strings.Contains(out.String(), "real") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret("abc"); got != "****" {
		t.Fatalf("got %q", got)
	}
	if got := maskSecret("longsecret"); got != "****cret" {
		t.Fatalf("got %q", got)
	}
}
