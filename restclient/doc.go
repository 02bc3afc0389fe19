// Package restclient is a typed HTTP client facade bound to one base host.
//
// A Client owns one long-lived session: cookie jar, TLS policy, default
// headers and one serializer configuration. Five typed operations — Get,
// Post, Put, PostForm and PostFiles — share a single response-resolution
// procedure: a 2xx body is decoded into the caller's type, a 401 fails as
// unauthorized regardless of body, and any other status fails with the
// reason phrase from the status line. A 2xx body that is empty, null, or
// undecodable is a decode failure, never a nil success.
//
// # Basic Usage
//
//	client, err := restclient.New(restclient.Config{
//	    BaseURL: "https://api.example.com",
//	})
//
//	user, err := restclient.Post[UserDto](client, ctx, "/users", UserDto{Name: "a"})
//	switch {
//	case restclient.IsUnauthorized(err):
//	    // 401, body ignored
//	case restclient.IsRequestFailed(err):
//	    // any other non-2xx, with reason phrase
//	}
//
// # Forms and Files
//
//	token, err := restclient.PostForm[TokenDto](client, ctx, "/token",
//	    restclient.Pairs("grant_type", "password", "scope", "read", "scope", "write"))
//
//	res, err := restclient.PostFiles[UploadDto](client, ctx, "/upload",
//	    []string{"report.pdf", "data.csv"})
//
// # Asynchronous Calls
//
//	future := restclient.GetAsync[UserDto](client, ctx, "/users/1")
//	user, err := future.Wait()
package restclient
