// Package blessings is a double-buffered terminal screen library.
//
// A Screen holds a back buffer of cells that drawing calls mutate freely;
// Show diffs it against the physical terminal and emits only the changed
// regions. Changes are tracked per line as first/last-changed column ranges
// so a frame that touches one status row costs one row of diffing, not a
// whole-screen scan.
//
// Features:
//   - Nested bounded windows with relative cursor addressing
//   - Control-character aware printing (\n \r \t \b) with wrap-around
//   - Wide (CJK) rune handling, continuation cells managed automatically
//   - Clear variants scoped to screen, line, line tail, or a single cell
//   - Cursor save/restore, visibility, and DECSCUSR shape control
//
// The low-level ANSI emission and platform handling live in the terminal
// subpackage.
package blessings
