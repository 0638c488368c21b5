package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLTHREC_SVC_"
)

const (
	ResourceProfile       = "profile"
	ResourceAppointments  = "appointments"
	ResourcePrescriptions = "prescriptions"
	ResourceHealthz       = "healthz"
)

const (
	MongoCollectionProfiles      = "profiles"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"

	// The profile collection holds at most one document, always under this id.
	MongoProfileSingletonID = "profile"
)

const (
	RedisKeyAppointmentList  = "records:appointments"
	RedisKeyPrescriptionList = "records:prescriptions"

	// Bumped on every create so a list read before the write is never cached.
	RedisKeyAppointmentGeneration  = "records:appointments:generation"
	RedisKeyPrescriptionGeneration = "records:prescriptions:generation"
)

const (
	EventTypeProfileSaved        = "profile.saved"
	EventTypeAppointmentCreated  = "appointment.created"
	EventTypePrescriptionCreated = "prescription.created"
)
