package dto

import "time"

// Request DTOs

type CreateLabSystemRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	APIURL        string `json:"api_url" validate:"required,url"`
	APIKey        string `json:"api_key" validate:"required"`
	SyncFrequency string `json:"sync_frequency" validate:"omitempty,max=30"`
}

type UpdateLabSystemRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=255"`
	APIURL        *string `json:"api_url" validate:"omitempty,url"`
	APIKey        *string `json:"api_key"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
	SyncFrequency *string `json:"sync_frequency" validate:"omitempty,max=30"`
}

type CreateLabResultRequest struct {
	PatientID    uint   `json:"patient_id" validate:"required,min=1"`
	LabSystemID  uint   `json:"lab_system_id" validate:"required,min=1"`
	TestType     string `json:"test_type" validate:"omitempty,max=100"`
	TestName     string `json:"test_name" validate:"omitempty,max=255"`
	ResultData   string `json:"result_data"`
	Status       string `json:"status" validate:"omitempty,oneof=pending completed reviewed"`
	CriticalFlag bool   `json:"critical_flag"`
	ResultDate   string `json:"result_date"`
}

type UpdateLabResultRequest struct {
	ResultData   *string `json:"result_data"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending completed reviewed"`
	CriticalFlag *bool   `json:"critical_flag"`
	ResultDate   *string `json:"result_date"`
}

// Response DTOs

type LabConnectionResponse struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message,omitempty"`
}

type LabSyncResponse struct {
	Synced     int       `json:"synced"`
	LastSyncAt time.Time `json:"last_sync_at"`
}
