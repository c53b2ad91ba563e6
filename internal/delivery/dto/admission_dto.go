package dto

import "time"

// Request DTOs

type CreateWardRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Type     string `json:"type" validate:"omitempty,max=50"`
	Capacity int    `json:"capacity" validate:"omitempty,min=0"`
}

type UpdateWardRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Type     *string `json:"type" validate:"omitempty,max=50"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=0"`
}

type CreateBedRequest struct {
	BedNumber string `json:"bed_number" validate:"required,max=50"`
	WardID    uint   `json:"ward_id" validate:"required,min=1"`
}

type UpdateBedRequest struct {
	WardID *uint   `json:"ward_id" validate:"omitempty,min=1"`
	Status *string `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

type CreateAdmissionRequest struct {
	PatientID     uint   `json:"patient_id" validate:"required,min=1"`
	BedID         uint   `json:"bed_id" validate:"required,min=1"`
	DoctorID      uint   `json:"doctor_id" validate:"required,min=1"`
	AdmissionDate string `json:"admission_date" validate:"required"`
	Diagnosis     string `json:"diagnosis"`
	Deposit       string `json:"deposit" validate:"omitempty"`
}

type UpdateAdmissionRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=active discharged"`
	DischargeDate *string `json:"discharge_date"`
	Diagnosis     *string `json:"diagnosis"`
	Deposit       *string `json:"deposit"`
}

// Response DTOs

type BedResponse struct {
	ID        uint      `json:"id"`
	BedNumber string    `json:"bed_number"`
	WardID    uint      `json:"ward_id"`
	WardName  string    `json:"ward_name,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BedListResponse struct {
	Beds  []BedResponse `json:"beds"`
	Total int           `json:"total"`
}

type AdmissionResponse struct {
	ID            uint       `json:"id"`
	PatientID     uint       `json:"patient_id"`
	BedID         uint       `json:"bed_id"`
	DoctorID      uint       `json:"doctor_id"`
	PatientName   string     `json:"patient_name,omitempty"`
	BedNumber     string     `json:"bed_number,omitempty"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	AdmissionDate time.Time  `json:"admission_date"`
	DischargeDate *time.Time `json:"discharge_date"`
	Diagnosis     string     `json:"diagnosis"`
	Status        string     `json:"status"`
	Deposit       string     `json:"deposit"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type AdmissionListResponse struct {
	Admissions []AdmissionResponse `json:"admissions"`
	Total      int                 `json:"total"`
}
