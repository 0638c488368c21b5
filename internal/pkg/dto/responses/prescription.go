package responses

type Prescription struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// HasImage reports whether an image reference is present. An empty string
// means no image was attached.
func (p Prescription) HasImage() bool {
	return p.Image != ""
}
