package camera

// OrbitController turns cursor motion into orbit camera drags.
//
// It keeps the last in-bounds cursor position between events so that the
// drag delta is measured from where the cursor was, not from where the button
// was pressed.
type OrbitController struct {
	Camera *OrbitCamera

	lastX, lastY float64
	seeded       bool
}

// NewOrbitController creates a controller driving cam.
func NewOrbitController(cam *OrbitCamera) *OrbitController {
	return &OrbitController{Camera: cam}
}

// HandleMouseMove processes a cursor move to (x, y) inside a window of the
// given size. Moves outside the window are ignored entirely. The last cursor
// position is updated on every in-bounds move; the camera is only dragged
// while leftHeld is set.
//
// Returns true if the camera changed and the view needs to be re-uploaded.
func (oc *OrbitController) HandleMouseMove(x, y float64, leftHeld bool, width, height int) bool {
	if x < 0 || x >= float64(width) || y < 0 || y >= float64(height) {
		return false
	}

	if !oc.seeded {
		oc.lastX, oc.lastY = x, y
		oc.seeded = true
	}

	moved := false
	if leftHeld {
		oc.Camera.HandleDrag(x-oc.lastX, y-oc.lastY)
		moved = true
	}

	oc.lastX, oc.lastY = x, y
	return moved
}

// LastCursor returns the last in-bounds cursor position.
func (oc *OrbitController) LastCursor() (x, y float64) {
	return oc.lastX, oc.lastY
}
