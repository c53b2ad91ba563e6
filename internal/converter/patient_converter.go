package converter

import (
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		PatientCode:      patient.PatientCode,
		Name:             patient.Name,
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		BloodType:        patient.BloodType,
		PhoneNumber:      patient.PhoneNumber,
		Email:            patient.Email,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		Allergies:        patient.Allergies,
		Status:           string(patient.Status),
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
