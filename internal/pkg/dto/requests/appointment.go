package requests

type Appointment struct {
	Date   string `json:"date" validate:"required"`
	Doctor string `json:"doctor" validate:"required"`
}
