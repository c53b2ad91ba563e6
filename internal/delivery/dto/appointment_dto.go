package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uint   `json:"patient_id" validate:"required,min=1"`
	DoctorID  uint   `json:"doctor_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"required"`
	Duration  int    `json:"duration" validate:"omitempty,min=5,max=480"`
	Type      string `json:"type" validate:"omitempty,max=50"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date     *string `json:"date"`
	Duration *int    `json:"duration" validate:"omitempty,min=5,max=480"`
	Type     *string `json:"type" validate:"omitempty,max=50"`
	Status   *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes    *string `json:"notes"`
}

type CreateMedicalRecordRequest struct {
	PatientID  uint   `json:"patient_id" validate:"required,min=1"`
	DoctorID   uint   `json:"doctor_id" validate:"required,min=1"`
	Date       string `json:"date" validate:"required"`
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uint      `json:"id"`
	PatientID   uint      `json:"patient_id"`
	DoctorID    uint      `json:"doctor_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
