// Package box - Bounding box collections and the operations used to prepare
// them for detection metrics: area and IoU geometry, sentinel padding of
// ragged batches, and class, area and confidence based selection.
package box

import "github.com/chewxy/math32"

const (
	// SentinelClass marks a padding slot in a rectangularized collection.
	SentinelClass = -1
	// SentinelCoord is the coordinate written into padding boxes.
	SentinelCoord = -1
	// SentinelConfidence is the confidence written into padding slots.
	SentinelConfidence = -1
)

// Box is an axis-aligned rectangle in corner format. Well-formed boxes have
// Right >= Left and Bottom >= Top; degenerate (zero area) boxes are valid
// and contribute zero area and zero IoU.
type Box struct {
	Left, Top, Right, Bottom float32
}

// Area returns (Right-Left) * (Bottom-Top). Corner order is the caller's
// responsibility: a box violating it yields whatever the arithmetic
// produces, never a clamped value.
func (b Box) Area() float32 {
	return (b.Right - b.Left) * (b.Bottom - b.Top)
}

// IoU returns the Intersection over Union between two boxes, in [0, 1].
// Identical boxes score 1, disjoint or merely touching boxes score 0.
func (b Box) IoU(o Box) float32 {
	// The intersection runs from the maximum of the top-left corners to the
	// minimum of the bottom-right corners.
	ix1 := math32.Max(b.Left, o.Left)
	iy1 := math32.Max(b.Top, o.Top)
	ix2 := math32.Min(b.Right, o.Right)
	iy2 := math32.Min(b.Bottom, o.Bottom)

	interW := ix2 - ix1
	interH := iy2 - iy1
	if interW <= 0 || interH <= 0 {
		return 0
	}
	inter := interW * interH

	// Inclusion-exclusion: Union(A, B) = Area(A) + Area(B) - Intersection(A, B).
	union := b.Area() + o.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}
