// Package tile defines the opaque voxel tile identifier. The core only
// cares whether a cell is solid during a visibility update; texture and
// material semantics of a non-zero id are the renderer's concern.
package tile

// Identifier is an opaque tile id. Default (zero) denotes air.
type Identifier uint16

// Default is the air tile.
const Default Identifier = 0
