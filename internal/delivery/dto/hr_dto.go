package dto

type CreateEmployeeRequest struct {
	UserID                uint   `json:"user_id" validate:"required,min=1"`
	Department            string `json:"department" validate:"omitempty,max=100"`
	Position              string `json:"position" validate:"omitempty,max=100"`
	JoinDate              string `json:"join_date" validate:"required"`
	Salary                string `json:"salary" validate:"omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
}

type UpdateEmployeeRequest struct {
	Department            *string `json:"department" validate:"omitempty,max=100"`
	Position              *string `json:"position" validate:"omitempty,max=100"`
	Salary                *string `json:"salary"`
	Status                *string `json:"status" validate:"omitempty,oneof=active inactive terminated"`
	EmergencyContactName  *string `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
}

type CreateLeaveRequest struct {
	EmployeeID uint   `json:"employee_id" validate:"required,min=1"`
	Type       string `json:"type" validate:"omitempty,max=50"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Reason     string `json:"reason"`
}

type UpdateLeaveRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Reason *string `json:"reason"`
}
