package pipeline

// Counters tracks aggregate totals for one run. Values are monotonically
// non-decreasing while the run executes. Merge uses sum for counts and max
// for dimensions; both reductions are commutative and associative, so the
// merged result does not depend on worker count or completion order.
type Counters struct {
	ImagesProcessed uint64
	TotalPixels     uint64
	MaxWidth        int
	MaxHeight       int
}

// Record adds one successfully processed image.
func (c *Counters) Record(pixels uint64, width, height int) {
	c.ImagesProcessed++
	c.TotalPixels += pixels
	if width > c.MaxWidth {
		c.MaxWidth = width
	}
	if height > c.MaxHeight {
		c.MaxHeight = height
	}
}

// Merge folds another worker's counters into c.
func (c *Counters) Merge(o Counters) {
	c.ImagesProcessed += o.ImagesProcessed
	c.TotalPixels += o.TotalPixels
	if o.MaxWidth > c.MaxWidth {
		c.MaxWidth = o.MaxWidth
	}
	if o.MaxHeight > c.MaxHeight {
		c.MaxHeight = o.MaxHeight
	}
}
