package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	PatientCode      string `json:"patient_id" validate:"required,max=50"`
	Name             string `json:"name" validate:"required,max=255"`
	DateOfBirth      string `json:"dob" validate:"required"`
	Gender           string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=5"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,max=30"`
	Email            string `json:"email" validate:"omitempty,email"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=255"`
	Allergies        string `json:"allergies"`
}

type UpdatePatientRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=255"`
	Gender           *string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodType        *string `json:"blood_type" validate:"omitempty,max=5"`
	PhoneNumber      *string `json:"phone_number" validate:"omitempty,max=30"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact" validate:"omitempty,max=255"`
	Allergies        *string `json:"allergies"`
	Status           *string `json:"status" validate:"omitempty,oneof=active inactive deceased"`
}

// Response DTOs

type PatientResponse struct {
	ID               uint      `json:"id"`
	PatientCode      string    `json:"patient_id"`
	Name             string    `json:"name"`
	DateOfBirth      string    `json:"dob"`
	Gender           string    `json:"gender"`
	BloodType        string    `json:"blood_type"`
	PhoneNumber      string    `json:"phone_number"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergency_contact"`
	Allergies        string    `json:"allergies"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
