package responses

type Appointment struct {
	Date   string `json:"date"`
	Doctor string `json:"doctor"`
}
