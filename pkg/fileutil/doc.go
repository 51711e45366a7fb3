// Package fileutil provides the file operations a dataset-fetching CLI needs:
// streaming HTTP downloads with progress reporting, zip extraction with
// zip-slip protection, and iteration over a directory's text files.
//
// # Download
//
// Download streams to a temporary file and renames it into place only after
// the whole transfer succeeds, so the destination never holds a partial file.
// Progress is rendered from the Content-Length header when the server sends
// one; otherwise a byte counter is shown. Optional SHA-256 verification
// rejects corrupted or tampered content before the rename:
//
//	res, err := fileutil.Download(ctx, url, "data/corpus.zip",
//	    fileutil.WithChecksum(expectedDigest),
//	    fileutil.WithProxy("http://proxy.example.com:3128"),
//	)
//
// # Extraction
//
// Unzip sanitizes every entry name and verifies the resolved path stays
// inside the destination directory, defeating archives crafted to write
// outside it:
//
//	files, err := fileutil.Unzip(ctx, "data/corpus.zip", "data/corpus")
//
// # Walking
//
// WalkTextFiles yields each regular file's name and contents, skipping
// dotfiles, as a standard iterator:
//
//	for doc, err := range fileutil.WalkTextFiles("data/corpus") {
//	    ...
//	}
//
// All operations take a context where they block; downloads and extraction
// stop promptly on cancellation and clean up partial output.
package fileutil
