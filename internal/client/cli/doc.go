// Package cli implements the sn command-line interface.
//
// Commands are dispatched with github.com/mitchellh/cli:
//   - create (alias c): read Markdown from FILE or stdin and submit it as a
//     new card called NAME.
//   - version: print build metadata.
//
// Main is the entry point used by cmd/sn. Run takes explicit streams and an
// environment lookup so the whole CLI can be driven from tests.
package cli
