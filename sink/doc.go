// SPDX-License-Identifier: EPL-2.0

// Package sink writes rendered audio to a destination.
//
// A Sink takes a render.Renderer and writes its header (if any), payload and
// footer (if any) in that order, using a single Write call per segment.
// Nothing is retried; the first failure ends the operation.
//
// # Destinations
//
//	// Create or truncate a file
//	err := sink.NewFileSink("tone.wav").Write(r)
//
//	// Standard output
//	err := sink.NewStdoutSink().Write(r)
//
//	// Any io.Writer, e.g. a buffer in tests
//	var buf bytes.Buffer
//	err := sink.NewStreamSink(&buf).Write(r)
//
// FileSink always closes the file it created, whether writing succeeded or
// not. A partially written file is left in place.
//
// # Error Handling
//
// Errors fall into two categories that can be matched with errors.Is:
//   - ErrDestinationUnavailable: the file could not be created, or the stream is nil
//   - ErrWriteFailure: a segment write, flush or close failed
//
// The underlying cause stays in the chain, so errors.Is(err, fs.ErrPermission)
// and similar checks keep working.
package sink
