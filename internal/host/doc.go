// Package host defines the capability surface the bridge consumes from the
// terminal host application.
//
// The host owns a fixed-size character-cell display and a stack of
// input/render layers. It knows nothing about vector graphics: the only
// drawing primitive it offers is reading and writing single colored cells.
// Input arrives as a set of named key events plus mouse state.
//
// This package contains:
//
//   - Screen: cell read/write, display dimensions, and mouse queries
//   - Cell: one display cell (glyph byte in the host's native encoding,
//     foreground and background palette indices)
//   - Charset: conversion from UTF-8 text to the host's single-byte encoding
//   - Key: the closed vocabulary of named key events, including the
//     character<->key mapping the host uses for printable keys
//
// Real implementations live in subpackages (termhost for a tcell-backed
// terminal). MemoryScreen provides an in-memory Screen for tests and
// headless rendering.
package host
