// Package pkg provides the core libraries for postersmith poster generation.
//
// # Overview
//
// Postersmith produces labeled poster graphics for media-server libraries by
// driving an external image tool. The pkg directory is organized into:
//
//  1. [catalog] - Per-category poster definition tables (pure configuration)
//  2. [translations] - YAML label translations with embedded defaults
//  3. [store] - Persistent key-value backends (SQLite, Redis, memory)
//  4. [pointsize] - The memoized optimal point-size cache
//  5. [magick] - The external image tool wrapper (measure, render, fonts)
//  6. [generator] - Batch orchestration (labels → sizes → renders)
//  7. [checksum] - SHA-256 verification of bundled assets
//
// # Architecture
//
// The typical data flow through a batch run:
//
//	[catalog] tables + [translations] labels
//	         ↓
//	    [pointsize] cache (backed by [store], measured via [magick])
//	         ↓
//	    [magick] render (one subprocess per poster)
//	         ↓
//	    PNG posters on disk
//
// The point-size cache is the only stateful piece: every (text, font, box,
// range) tuple is measured at most once per store lifetime.
package pkg
