package requests

// Image is a URI produced by the client's image picker, empty when no image
// was attached.
type Prescription struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}
