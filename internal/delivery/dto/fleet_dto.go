package dto

type CreateVehicleRequest struct {
	PlateNumber string `json:"plate_number" validate:"required,max=30"`
	Model       string `json:"model" validate:"omitempty,max=100"`
	Type        string `json:"type" validate:"omitempty,max=50"`
}

type UpdateVehicleRequest struct {
	Model  *string `json:"model" validate:"omitempty,max=100"`
	Type   *string `json:"type" validate:"omitempty,max=50"`
	Status *string `json:"status" validate:"omitempty,oneof=available in-use maintenance"`
}

type CreateAssignmentRequest struct {
	VehicleID uint   `json:"vehicle_id" validate:"required,min=1"`
	DriverID  *uint  `json:"driver_id" validate:"omitempty,min=1"`
	Purpose   string `json:"purpose" validate:"omitempty,max=255"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"`
}

type UpdateAssignmentRequest struct {
	Status  *string `json:"status" validate:"omitempty,oneof=scheduled in-progress completed cancelled"`
	EndTime *string `json:"end_time"`
	Purpose *string `json:"purpose" validate:"omitempty,max=255"`
}
