// Package io writes fixture files to disk and reads them back.
//
// # Export
//
// [Export] publishes a fixture under a fixed name in an output directory
// without ever replacing an existing file:
//
//	path, err := io.Export(ctx, ".", "colors-40.json", func(w io.Writer) error {
//	    return palette.Write(p, w)
//	})
//
// The content is first written to a hidden temporary file in the same
// directory, flushed and synced. It is then published with a hard link,
// which fails atomically when the target exists. A run that fails at any
// point removes the temporary file, so no partial fixture is ever visible
// under the final name.
//
// Failures are reported with codes from package errors:
//
//   - OUTPUT_COLLISION when the target already exists
//   - FILESYSTEM_ERROR when the file cannot be created, written or published
//
// # Import
//
// [Import] opens a fixture of either kind and decodes it after sniffing its
// top-level keys:
//
//	{"colors": [...]}              → [KindPalette]
//	{"nodes": [...], "links": [...]} → [KindGraph]
//
// # Concurrency
//
// Two processes exporting the same name race safely: exactly one link
// succeeds and the other reports OUTPUT_COLLISION.
package io
