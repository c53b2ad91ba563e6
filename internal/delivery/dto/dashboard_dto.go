package dto

// Response DTOs

type DashboardStatsResponse struct {
	TotalPatients      int64 `json:"total_patients"`
	ActivePatients     int64 `json:"active_patients"`
	TodayAppointments  int64 `json:"today_appointments"`
	ActiveAdmissions   int64 `json:"active_admissions"`
	AvailableBeds      int64 `json:"available_beds"`
	OccupiedBeds       int64 `json:"occupied_beds"`
	LowStockItems      int64 `json:"low_stock_items"`
	PendingBills       int64 `json:"pending_bills"`
	CriticalLabResults int64 `json:"critical_lab_results"`
}

type WardUtilizationResponse struct {
	WardID        uint    `json:"ward_id"`
	WardName      string  `json:"ward_name"`
	Capacity      int     `json:"capacity"`
	OccupiedBeds  int64   `json:"occupied_beds"`
	AvailableBeds int64   `json:"available_beds"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type ResourceUtilizationResponse struct {
	Wards []WardUtilizationResponse `json:"wards"`
}
