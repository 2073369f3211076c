// Package gui models the boundary to the embedded immediate-mode GUI
// library.
//
// The library itself is a black box: its layout and widget logic are out of
// scope here. What this package pins down is the exact capability surface
// the bridge needs from it:
//
//   - the per-frame draw data it emits (DrawData, DrawList, DrawVert,
//     DrawCmd) in the library's convention, where one rendered character is
//     a pair of triangles sharing texture coordinates and carrying a glyph
//     payload on the vertex
//   - the Context interface: frame begin/end, the two global window
//     orderings (display and focus) as readable and writable lists, child
//     window discovery, the library's child-aware subset sort, and a
//     restricted render entry point
//   - the Input snapshot consumed at frame begin
//   - style and key-mapping configuration (StyleSheet)
//
// Keeping this an interface rather than reaching into library internals
// keeps the ordering reconciler independent of any one library version.
//
// The library maintains a single active context at a time; Current and
// SetCurrent mirror that notion so a caller can save and restore whichever
// context was active before it ran.
package gui
