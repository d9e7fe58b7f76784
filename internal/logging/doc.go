// Package logging builds the zap logger used by the server. Output goes to
// stderr so it never mixes with protocol traffic on stdout.
package logging
