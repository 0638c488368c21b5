package constvars

// Notices shown to the user by the sync client.
const (
	NoticeTitleError            = "Error"
	NoticeTitleSuccess          = "Success"
	NoticeTitlePermissionDenied = "Permission denied"

	NoticeLoadAppointmentsFailed  = "Could not load appointments"
	NoticeLoadPrescriptionsFailed = "Could not load prescriptions"

	NoticeProfileRequiredFields = "Please fill in name and age"
	NoticeProfileSaved          = "Profile saved successfully!"
	NoticeProfileSaveFailed     = "Failed to save profile"

	NoticeAppointmentRequiredFields = "Enter date and doctor name"
	NoticeAppointmentAddFailed      = "Failed to add appointment"

	NoticePrescriptionRequiredFields = "Enter prescription name"
	NoticePrescriptionAddFailed      = "Failed to save prescription"

	NoticeImagePermissionDenied = "Allow access to photo library"
)
