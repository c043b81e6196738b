package editor

// MinImageDimension is the floor a drag can shrink an image to.
const MinImageDimension = 1

// Image is an embedded image block with explicit display dimensions.
type Image struct {
	Src     string
	Width   int
	Height  int
	resizer *Resizer
}

// Resizer is the drag-controlled resize affordance anchored at an image's
// bottom-right corner. Move events keep flowing after the pointer leaves
// the handle's bounds; only Release stops a drag.
type Resizer struct {
	image          *Image
	startX, startY int
	startW, startH int
	dragging       bool
}

// AttachResizer wraps an image with a resize affordance. Attaching twice
// returns the existing resizer, so repeated paste handling cannot stack
// wrappers.
func AttachResizer(img *Image) *Resizer {
	if img.resizer != nil {
		return img.resizer
	}
	img.resizer = &Resizer{image: img}
	return img.resizer
}

// Resizer returns the attached affordance, or nil.
func (img *Image) Resizer() *Resizer { return img.resizer }

// Press begins a drag, capturing the pointer origin and the image's
// current dimensions.
func (r *Resizer) Press(x, y int) {
	r.startX, r.startY = x, y
	r.startW, r.startH = r.image.Width, r.image.Height
	r.dragging = true
}

// Move resizes the image by the pointer delta since Press. Ignored unless
// a drag is in progress.
func (r *Resizer) Move(x, y int) {
	if !r.dragging {
		return
	}
	w := r.startW + (x - r.startX)
	h := r.startH + (y - r.startY)
	if w < MinImageDimension {
		w = MinImageDimension
	}
	if h < MinImageDimension {
		h = MinImageDimension
	}
	r.image.Width = w
	r.image.Height = h
}

// Release ends the drag.
func (r *Resizer) Release() {
	r.dragging = false
}

// Dragging reports whether a drag is in progress.
func (r *Resizer) Dragging() bool { return r.dragging }
