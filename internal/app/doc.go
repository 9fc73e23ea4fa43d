// Package app contains the core application logic. It defines the App
// struct, its configuration, and the load-then-emit lifecycle, decoupled
// from any specific entrypoint like the CLI.
package app
