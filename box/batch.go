package box

import "github.com/pkg/errors"

// Batch is the rectangular, sentinel-padded representation of a batch of
// sets, one row of each parallel sequence per image. Different images may
// hold different numbers of real boxes; every image is right padded with
// sentinel rows up to the widest image in the batch, so the arrays stay
// rectangular. This is the wire shape consumed by batch metric
// computations; Set is the ragged in-memory shape used by single-image
// operations.
type Batch struct {
	Boxes      [][]Box
	Classes    [][]int
	Confidence [][]float32
}

// Len returns the number of images in the batch.
func (b Batch) Len() int { return len(b.Boxes) }

// Validate checks that the parallel sequences agree per image and that the
// batch is rectangular. A ragged batch is reported as ErrInvalidShape.
func (b Batch) Validate() error {
	width := -1
	for i := 0; i < b.Len(); i++ {
		s, err := b.Image(i)
		if err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "image %d", i)
		}
		if width == -1 {
			width = s.Len()
		}
		if s.Len() != width {
			return errors.Wrapf(ErrInvalidShape, "image %d has %d rows, batch width is %d", i, s.Len(), width)
		}
	}
	return nil
}

// Image returns the set at the given batch index, padding rows included.
// The returned set aliases the batch storage rather than copying it.
func (b Batch) Image(index int) (Set, error) {
	if index < 0 || index >= len(b.Boxes) {
		return Set{}, errors.Wrapf(ErrIndexOutOfRange, "image index %d, batch size %d", index, len(b.Boxes))
	}
	if len(b.Classes) != len(b.Boxes) || (b.Confidence != nil && len(b.Confidence) != len(b.Boxes)) {
		return Set{}, errors.Wrapf(ErrShapeMismatch, "batch sequences disagree on batch size")
	}
	s := Set{Boxes: b.Boxes[index], Classes: b.Classes[index]}
	if b.Confidence != nil {
		s.Confidence = b.Confidence[index]
	}
	return s, nil
}

// PadToRectangular stacks a ragged list of sets into a rectangular Batch.
// Every set is right padded with sentinel rows (class SentinelClass, box
// coordinates SentinelCoord, confidence SentinelConfidence) up to the
// length of the longest set. Real rows keep their order; padding is only
// ever appended, never interleaved.
//
// Either every set carries confidence or none does; mixing the two within
// one batch is a shape mismatch.
func PadToRectangular(sets []Set) (Batch, error) {
	width := 0
	withConf := len(sets) > 0 && sets[0].Confidence != nil
	for i, s := range sets {
		if err := s.Validate(); err != nil {
			return Batch{}, errors.Wrapf(err, "set %d", i)
		}
		if (s.Confidence != nil) != withConf {
			return Batch{}, errors.Wrapf(ErrShapeMismatch, "set %d: confidence present on some sets and absent on others", i)
		}
		if s.Len() > width {
			width = s.Len()
		}
	}

	out := Batch{
		Boxes:   make([][]Box, len(sets)),
		Classes: make([][]int, len(sets)),
	}
	if withConf {
		out.Confidence = make([][]float32, len(sets))
	}
	for i, s := range sets {
		boxes := make([]Box, width)
		classes := make([]int, width)
		copy(boxes, s.Boxes)
		copy(classes, s.Classes)
		for j := s.Len(); j < width; j++ {
			boxes[j] = Box{SentinelCoord, SentinelCoord, SentinelCoord, SentinelCoord}
			classes[j] = SentinelClass
		}
		out.Boxes[i] = boxes
		out.Classes[i] = classes

		if withConf {
			conf := make([]float32, width)
			copy(conf, s.Confidence)
			for j := s.Len(); j < width; j++ {
				conf[j] = SentinelConfidence
			}
			out.Confidence[i] = conf
		}
	}
	return out, nil
}
