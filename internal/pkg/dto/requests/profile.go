package requests

type Profile struct {
	Name       string `json:"name" validate:"required"`
	Age        string `json:"age" validate:"required"`
	Conditions string `json:"conditions"`
}
