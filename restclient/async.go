package restclient

import "context"

// Future is the pending result of one asynchronous call.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns its future result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Wait blocks until the call completes and returns the identical value and
// error the underlying call produced. No re-wrapping: an unauthorized,
// request-failed, decode or transport error comes through unchanged.
// Wait may be called any number of times.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done reports completion without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// GetAsync starts a GET request and returns its future result.
func GetAsync[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) *Future[T] {
	return Go(func() (T, error) { return Get[T](c, ctx, path, opts...) })
}

// PostAsync starts a POST request and returns its future result.
func PostAsync[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) *Future[T] {
	return Go(func() (T, error) { return Post[T](c, ctx, path, body, opts...) })
}

// PutAsync starts a PUT request and returns its future result.
func PutAsync[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) *Future[T] {
	return Go(func() (T, error) { return Put[T](c, ctx, path, body, opts...) })
}

// PostFormAsync starts a form POST request and returns its future result.
func PostFormAsync[T any](c *Client, ctx context.Context, path string, form FormBody, opts ...RequestOption) *Future[T] {
	return Go(func() (T, error) { return PostForm[T](c, ctx, path, form, opts...) })
}

// PostFilesAsync starts a multipart file upload and returns its future result.
// The existence check on every path still happens before any network I/O,
// inside the spawned call.
func PostFilesAsync[T any](c *Client, ctx context.Context, path string, filePaths []string, opts ...RequestOption) *Future[T] {
	return Go(func() (T, error) { return PostFiles[T](c, ctx, path, filePaths, opts...) })
}
