// Package security holds TLS settings shared across restkit transports.
//
// TLSConfig is a declarative description of client-side TLS policy
// (certificate verification, CA bundle, minimum protocol version) that
// builds into a *tls.Config. The minimum version always defaults to
// TLS 1.2.
package security
