// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

// Package checksum computes the content digest that uptodate prints
// next to a published artifact's name for the package index.
//
// Two [Digester] strategies produce the same lowercase hex digest:
//
//   - [MemoryDigester] reads the whole file and hashes it in-process.
//   - [CommandDigester] runs an external program (shasum, or b3sum for
//     BLAKE3) and takes the first token of its output.
//
// [Engine] picks between them by file size: files smaller than
// [Engine.Threshold] (default [DefaultThreshold], 200 MiB) are hashed
// in memory, larger ones are handed to the external program so memory
// use stays bounded. Both paths must agree byte-for-byte on the digest;
// [CommandDigester] validates the program's output against the
// algorithm's hex length before returning it.
//
// SHA-1 is the default because it is what package indexes consuming
// this output expect. SHA-256 and BLAKE3 are available for indexes
// that have moved on.
package checksum
