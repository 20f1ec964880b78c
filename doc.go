// Package pointmatch turns two independent sets of 3-D detections into an
// optimal one-to-one correspondence — the matching engine behind comparing
// repeated passes over the same sample.
//
// 🚀 What is pointmatch?
//
//	A small, focused library that brings together:
//		• Domain types: labeled 3-D points with index-based identity
//		• Adapters: typed point sets ↔ gonum coordinate matrices
//		• A Jonker–Volgenant-class assignment solver (O(n³) worst case)
//		• Exact-duplicate pre-matching as a correctness-preserving fast path
//		• A threshold-aware matching façade with forbidden-edge semantics
//
// ✨ Why choose pointmatch?
//
//   - Globally optimal — no greedy nearest-neighbor artifacts
//   - Deterministic — documented tie-breaking, caller-order-stable results
//   - Guarded — one solve at a time, process-wide, by explicit rejection
//   - Pure library — no file formats, no wire protocols, no CLI
//
// Everything is organized under three subpackages:
//
//	points/ — Point, Set and classification labels + matrix adapters
//	assign/ — canonical rows≤cols min-cost assignment solver
//	match/  — distance model, pre-matcher, threshold façade, progress guard
//
// Quick ASCII example:
//
//	    A: ●(0,0,0)        ●(12,0,0)
//	                \          │
//	    B:           ●(10,0,0) │  ●(22,0,0)
//
//	the global optimum pairs 0↔0 and 1↔1 (total 20), beating the
//	nearest-neighbor pairing 1↔0 then 0↔1 (total 24).
//
// Dive into match/doc.go for the façade contract and assign/doc.go for the
// solver internals.
//
//	go get github.com/katalvlaran/pointmatch
package pointmatch
