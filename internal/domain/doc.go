// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel error kinds and the *Error carrier that every layer uses
// to report a single, client-facing failure.
package domain
