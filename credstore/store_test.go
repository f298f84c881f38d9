package credstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// storeUnderTest runs the full Store contract against any implementation.
func storeUnderTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Empty profile.
	if _, err := s.LoadToken(ctx); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("LoadToken on empty store: err = %v, want ErrTokenNotFound", err)
	}
	if _, err := s.LoadIdentifier(ctx); !errors.Is(err, ErrIdentifierNotFound) {
		t.Fatalf("LoadIdentifier on empty store: err = %v, want ErrIdentifierNotFound", err)
	}

	// Round trip.
	if err := s.SaveToken(ctx, "tok-1"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	got, err := s.LoadToken(ctx)
	if err != nil || got != "tok-1" {
		t.Fatalf("LoadToken = (%q, %v), want (tok-1, nil)", got, err)
	}

	// Overwrite.
	if err := s.SaveToken(ctx, "tok-2"); err != nil {
		t.Fatalf("SaveToken overwrite: %v", err)
	}
	if got, _ = s.LoadToken(ctx); got != "tok-2" {
		t.Fatalf("LoadToken after overwrite = %q, want tok-2", got)
	}

	// Identifier survives token clearing.
	if err := s.RememberIdentifier(ctx, "a@b.com"); err != nil {
		t.Fatalf("RememberIdentifier: %v", err)
	}
	if err := s.ClearToken(ctx); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if _, err := s.LoadToken(ctx); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("LoadToken after clear: err = %v, want ErrTokenNotFound", err)
	}
	id, err := s.LoadIdentifier(ctx)
	if err != nil || id != "a@b.com" {
		t.Fatalf("LoadIdentifier after ClearToken = (%q, %v), want (a@b.com, nil)", id, err)
	}

	// Clear is idempotent.
	if err := s.ClearToken(ctx); err != nil {
		t.Fatalf("second ClearToken: %v", err)
	}

	// Forget is independent of the token slot.
	if err := s.SaveToken(ctx, "tok-3"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := s.ForgetIdentifier(ctx); err != nil {
		t.Fatalf("ForgetIdentifier: %v", err)
	}
	if _, err := s.LoadIdentifier(ctx); !errors.Is(err, ErrIdentifierNotFound) {
		t.Fatalf("LoadIdentifier after forget: err = %v, want ErrIdentifierNotFound", err)
	}
	if got, _ = s.LoadToken(ctx); got != "tok-3" {
		t.Fatalf("token lost by ForgetIdentifier: %q", got)
	}
	if err := s.ForgetIdentifier(ctx); err != nil {
		t.Fatalf("second ForgetIdentifier: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	s, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	storeUnderTest(t, s)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := first.SaveToken(ctx, "durable"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := first.RememberIdentifier(ctx, "a@b.com"); err != nil {
		t.Fatalf("RememberIdentifier: %v", err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile (reopen): %v", err)
	}
	if got, err := second.LoadToken(ctx); err != nil || got != "durable" {
		t.Fatalf("reopened LoadToken = (%q, %v)", got, err)
	}
	if got, err := second.LoadIdentifier(ctx); err != nil || got != "a@b.com" {
		t.Fatalf("reopened LoadIdentifier = (%q, %v)", got, err)
	}
}

func TestFileStoreProfilePermissions(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := s.SaveToken(context.Background(), "secret"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	if err != nil {
		t.Fatalf("stat profile: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("profile perms = %o, want 600", perm)
	}
}

func TestFileStoreToleratesCorruptProfile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt profile: %v", err)
	}

	if _, err := s.LoadToken(context.Background()); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("corrupt profile: err = %v, want ErrTokenNotFound", err)
	}
	if err := s.SaveToken(context.Background(), "fresh"); err != nil {
		t.Fatalf("SaveToken over corrupt profile: %v", err)
	}
	if got, err := s.LoadToken(context.Background()); err != nil || got != "fresh" {
		t.Fatalf("LoadToken after recovery = (%q, %v)", got, err)
	}
}

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, "test")
}

func TestRedisStore(t *testing.T) {
	storeUnderTest(t, newTestRedis(t))
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	s := NewRedis(client, "test")

	mr.Close()

	if err := s.SaveToken(context.Background(), "tok"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("SaveToken err = %v, want ErrRedisUnavailable", err)
	}
	if _, err := s.LoadToken(context.Background()); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("LoadToken err = %v, want ErrRedisUnavailable", err)
	}
}
