// Package environ abstracts the process environment behind a small
// interface so configuration loading can be exercised against an isolated
// in-memory snapshot as well as the real process environment.
package environ
