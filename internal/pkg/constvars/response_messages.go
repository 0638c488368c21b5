package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Record store messages
	SaveProfileSuccessMessage        = "Profile saved"
	CreateAppointmentSuccessMessage  = "Appointment added"
	CreatePrescriptionSuccessMessage = "Prescription added"
	GetAppointmentsSuccessMessage    = "get appointments successfully"
	GetPrescriptionsSuccessMessage   = "get prescriptions successfully"
	HealthySuccessMessage            = "storage reachable"
)
