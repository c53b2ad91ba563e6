package converter

import (
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
)

// BedToResponse converts a Bed entity to BedResponse DTO
func BedToResponse(bed *entity.Bed) *dto.BedResponse {
	if bed == nil {
		return nil
	}

	response := &dto.BedResponse{
		ID:        bed.ID,
		BedNumber: bed.BedNumber,
		WardID:    bed.WardID,
		Status:    string(bed.Status),
		CreatedAt: bed.CreatedAt,
		UpdatedAt: bed.UpdatedAt,
	}

	if bed.Ward.ID != 0 {
		response.WardName = bed.Ward.Name
	}

	return response
}

// BedsToResponses converts a slice of Bed entities to slice of BedResponse DTOs
func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	responses := make([]dto.BedResponse, len(beds))
	for i, bed := range beds {
		resp := BedToResponse(&bed)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AdmissionToResponse converts an Admission entity to AdmissionResponse DTO
func AdmissionToResponse(admission *entity.Admission) *dto.AdmissionResponse {
	if admission == nil {
		return nil
	}

	response := &dto.AdmissionResponse{
		ID:            admission.ID,
		PatientID:     admission.PatientID,
		BedID:         admission.BedID,
		DoctorID:      admission.DoctorID,
		AdmissionDate: admission.AdmissionDate,
		DischargeDate: admission.DischargeDate,
		Diagnosis:     admission.Diagnosis,
		Status:        string(admission.Status),
		Deposit:       admission.Deposit.String(),
		CreatedAt:     admission.CreatedAt,
		UpdatedAt:     admission.UpdatedAt,
	}

	if admission.Patient.ID != 0 {
		response.PatientName = admission.Patient.Name
	}
	if admission.Bed.ID != 0 {
		response.BedNumber = admission.Bed.BedNumber
	}
	if admission.Doctor.ID != 0 {
		response.DoctorName = admission.Doctor.Name
	}

	return response
}

// AdmissionsToResponses converts a slice of Admission entities to slice of AdmissionResponse DTOs
func AdmissionsToResponses(admissions []entity.Admission) []dto.AdmissionResponse {
	responses := make([]dto.AdmissionResponse, len(admissions))
	for i, admission := range admissions {
		resp := AdmissionToResponse(&admission)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
