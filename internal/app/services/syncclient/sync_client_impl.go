package syncclient

import (
	"context"
	"errors"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
	"healthrecord-service/internal/pkg/utils"
	"sync"

	"github.com/sirupsen/logrus"
)

// Client keeps a local copy of the appointment and prescription lists and the
// editable form state, and routes every mutation through the record store.
// Writes are applied to the local copy only after the store acknowledged
// them, so a failed write leaves both the cache and the form untouched.
type Client struct {
	store    contracts.RecordStore
	picker   contracts.ImagePicker
	notifier contracts.Notifier
	log      logrus.FieldLogger

	mu               sync.Mutex
	appointments     []responses.Appointment
	prescriptions    []responses.Prescription
	profileForm      ProfileForm
	appointmentForm  AppointmentForm
	prescriptionForm PrescriptionForm
}

func NewClient(store contracts.RecordStore, picker contracts.ImagePicker, notifier contracts.Notifier, logger logrus.FieldLogger) *Client {
	return &Client{
		store:         store,
		picker:        picker,
		notifier:      notifier,
		log:           logger,
		appointments:  make([]responses.Appointment, 0),
		prescriptions: make([]responses.Prescription, 0),
	}
}

// Load fetches both lists concurrently. Each list fails on its own: a failed
// fetch keeps its previous cache slot and raises its own notice while the
// other one is still applied.
func (c *Client) Load(ctx context.Context) error {
	var (
		wg              sync.WaitGroup
		appointmentErr  error
		prescriptionErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		appointments, err := c.store.ListAppointments(ctx)
		if err != nil {
			appointmentErr = err
			c.log.WithError(err).Warn("loading appointments failed")
			c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticeLoadAppointmentsFailed)
			return
		}
		c.mu.Lock()
		c.appointments = appointments
		c.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		prescriptions, err := c.store.ListPrescriptions(ctx)
		if err != nil {
			prescriptionErr = err
			c.log.WithError(err).Warn("loading prescriptions failed")
			c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticeLoadPrescriptionsFailed)
			return
		}
		c.mu.Lock()
		c.prescriptions = prescriptions
		c.mu.Unlock()
	}()
	wg.Wait()

	return errors.Join(appointmentErr, prescriptionErr)
}

func (c *Client) Appointments() []responses.Appointment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]responses.Appointment, 0, len(c.appointments)), c.appointments...)
}

func (c *Client) Prescriptions() []responses.Prescription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]responses.Prescription, 0, len(c.prescriptions)), c.prescriptions...)
}

func (c *Client) ProfileForm() ProfileForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profileForm
}

func (c *Client) AppointmentForm() AppointmentForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appointmentForm
}

func (c *Client) PrescriptionForm() PrescriptionForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prescriptionForm
}

// EditProfile replaces the profile form values. Edits made while a save is
// in flight are ignored.
func (c *Client) EditProfile(values requests.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profileForm.Status == FormEditing {
		c.profileForm.Values = values
	}
}

func (c *Client) EditAppointment(values requests.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.appointmentForm.Status == FormEditing {
		c.appointmentForm.Values = values
	}
}

// EditPrescription updates the prescription name and keeps any staged image.
func (c *Client) EditPrescription(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prescriptionForm.Status == FormEditing {
		c.prescriptionForm.Values.Name = name
	}
}

// SaveProfile submits the profile form. The form keeps its values whatever
// the outcome, the profile is not cached apart from it.
func (c *Client) SaveProfile(ctx context.Context) error {
	c.mu.Lock()
	if c.profileForm.Status == FormSubmitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	values := c.profileForm.Values
	err := utils.ValidateStruct(values)
	if err != nil {
		c.mu.Unlock()
		c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticeProfileRequiredFields)
		return newValidationError("profile", err)
	}
	c.profileForm.Status = FormSubmitting
	c.mu.Unlock()

	err = c.store.SaveProfile(ctx, values)

	c.mu.Lock()
	c.profileForm.Status = FormEditing
	c.mu.Unlock()

	if err != nil {
		c.log.WithError(err).Warn("saving profile failed")
		c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticeProfileSaveFailed)
		return err
	}

	c.notifier.Notify(constvars.NoticeTitleSuccess, constvars.NoticeProfileSaved)
	return nil
}

// AddAppointment submits the appointment form. On acknowledgement the
// submitted values are appended to the local list and the form is cleared.
func (c *Client) AddAppointment(ctx context.Context) error {
	c.mu.Lock()
	if c.appointmentForm.Status == FormSubmitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	values := c.appointmentForm.Values
	err := utils.ValidateStruct(values)
	if err != nil {
		c.mu.Unlock()
		c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticeAppointmentRequiredFields)
		return newValidationError("appointment", err)
	}
	c.appointmentForm.Status = FormSubmitting
	c.mu.Unlock()

	err = c.store.CreateAppointment(ctx, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.appointmentForm.Status = FormEditing
	if err != nil {
		c.log.WithError(err).Warn("adding appointment failed")
		c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticeAppointmentAddFailed)
		return err
	}

	c.appointments = append(c.appointments, responses.Appointment(values))
	c.appointmentForm.Values = requests.Appointment{}
	return nil
}

// AddPrescription submits the prescription form, including any staged image.
func (c *Client) AddPrescription(ctx context.Context) error {
	c.mu.Lock()
	if c.prescriptionForm.Status == FormSubmitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	values := c.prescriptionForm.Values
	err := utils.ValidateStruct(values)
	if err != nil {
		c.mu.Unlock()
		c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticePrescriptionRequiredFields)
		return newValidationError("prescription", err)
	}
	c.prescriptionForm.Status = FormSubmitting
	c.mu.Unlock()

	err = c.store.CreatePrescription(ctx, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.prescriptionForm.Status = FormEditing
	if err != nil {
		c.log.WithError(err).Warn("adding prescription failed")
		c.notifier.Notify(constvars.NoticeTitleError, constvars.NoticePrescriptionAddFailed)
		return err
	}

	c.prescriptions = append(c.prescriptions, responses.Prescription(values))
	c.prescriptionForm.Values = requests.Prescription{}
	return nil
}

// AttachImage asks the image picker for a picture and stages its URI on the
// prescription form. It never talks to the record store.
func (c *Client) AttachImage(ctx context.Context) error {
	uri, canceled, err := c.picker.PickImage(ctx)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			c.notifier.Notify(constvars.NoticeTitlePermissionDenied, constvars.NoticeImagePermissionDenied)
		}
		c.log.WithError(err).Warn("picking image failed")
		return err
	}
	if canceled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prescriptionForm.Status == FormSubmitting {
		return ErrSubmitInProgress
	}
	c.prescriptionForm.Values.Image = uri
	return nil
}
