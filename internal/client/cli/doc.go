// Package cli implements the interactive uploader for the LabsDAO data
// marketplace: file validation, provider selection, credential management,
// connectivity testing, and upload history, driven by a small REPL.
//
// Commands are dispatched by runREPL; each handler notifies the user of its
// outcome itself, so the loop never reports errors twice.
package cli
