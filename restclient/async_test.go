package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFuture_WaitReturnsValue(t *testing.T) {
	f := Go(func() (int, error) { return 42, nil })
	got, err := f.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d", got)
	}
	// Wait is repeatable.
	got, _ = f.Wait()
	if got != 42 {
		t.Errorf("second Wait got %d", got)
	}
}

func TestFuture_Done(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 1, nil
	})
	if f.Done() {
		t.Error("future should not be done before the call returns")
	}
	close(release)
	f.Wait()
	if !f.Done() {
		t.Error("future should be done after Wait")
	}
}

func TestGetAsync_MatchesBlockingResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":5,"name":"async"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	blocking, berr := Get[userDto](c, ctx, "/u")
	async, aerr := GetAsync[userDto](c, ctx, "/u").Wait()

	if berr != nil || aerr != nil {
		t.Fatalf("errors: %v, %v", berr, aerr)
	}
	if blocking != async {
		t.Errorf("blocking %+v != async %+v", blocking, async)
	}
}

func TestAsync_PreservesErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	if _, err := PostAsync[userDto](c, ctx, "/u", userDto{Name: "a"}).Wait(); !IsUnauthorized(err) {
		t.Errorf("PostAsync: expected unauthorized, got %v", err)
	}
	if _, err := PutAsync[userDto](c, ctx, "/u", nil).Wait(); !IsUnauthorized(err) {
		t.Errorf("PutAsync: expected unauthorized, got %v", err)
	}
	if _, err := PostFormAsync[userDto](c, ctx, "/u", Pairs("k", "v")).Wait(); !IsUnauthorized(err) {
		t.Errorf("PostFormAsync: expected unauthorized, got %v", err)
	}
}

func TestPostFilesAsync_FileNotFound(t *testing.T) {
	c := newTestClient(t, "http://localhost:1")
	missing := filepath.Join(t.TempDir(), "missing.bin")

	_, err := PostFilesAsync[userDto](c, context.Background(), "/upload", []string{missing}).Wait()
	if !IsFileNotFound(err) {
		t.Fatalf("expected file not found, got %v", err)
	}
}

func TestAsync_ConcurrentCallsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			time.Sleep(50 * time.Millisecond)
		}
		w.Write([]byte(`{"id":1,"name":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	var wg sync.WaitGroup
	futures := make([]*Future[userDto], 0, 10)
	for i := 0; i < 10; i++ {
		path := "/fast"
		if i%2 == 0 {
			path = "/slow"
		}
		futures = append(futures, GetAsync[userDto](c, ctx, path))
	}
	for _, f := range futures {
		wg.Add(1)
		go func(f *Future[userDto]) {
			defer wg.Done()
			if _, err := f.Wait(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(f)
	}
	wg.Wait()
}
