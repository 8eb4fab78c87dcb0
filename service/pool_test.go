package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"genpdf"
	"genpdf/logging"
)

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	logger, err := logging.New(logging.Config{Level: logging.LevelError})
	if err != nil {
		t.Fatalf("building logger: %v", err)
	}
	return logger
}

func newTestJob() Job {
	cache := genpdf.NewCache()
	font := cache.AddBuiltinFamily("Helvetica")
	doc := genpdf.NewDocument(font, cache)
	doc.SetMargins(genpdf.MarginsAll(10))
	doc.Push(genpdf.NewParagraph("hello from a pool worker"))
	return Job{Doc: doc}
}

func TestPoolRendersSubmittedJob(t *testing.T) {
	storage := NewLocalStorage(filepath.Join(t.TempDir(), "out"))
	pool := NewPool(2, storage, testLogger(t))
	pool.Start()
	defer pool.Stop(context.Background())

	id, err := pool.Submit(newTestJob())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if result, ok := pool.Result(id); ok {
			if result.Err != nil {
				t.Fatalf("render failed: %v", result.Err)
			}
			if len(result.PDF) == 0 {
				t.Fatal("expected non-empty rendered PDF")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for job result")
}

func TestLocalStorageRoundTrip(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())
	ctx := context.Background()
	want := []byte("%PDF-fake-content")

	if err := storage.Store(ctx, "job-1", want); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := storage.Get(ctx, "job-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}
