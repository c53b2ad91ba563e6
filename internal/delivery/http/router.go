package http

import (
	"net/http"

	"hospital-erp/internal/delivery/http/handler"
	"hospital-erp/internal/delivery/http/middleware"
	"hospital-erp/internal/domain/entity"

	"github.com/gorilla/mux"
)

// CrudHandlers bundles the handlers for the plain create/read/patch entities
// so the router constructor stays readable.
type CrudHandlers struct {
	ClinicalGuideline *handler.CrudHandler[entity.ClinicalGuideline]
	DiagnosticSession *handler.CrudHandler[entity.DiagnosticSession]
	TreatmentPlan     *handler.CrudHandler[entity.TreatmentPlan]
	MedicalOrder      *handler.CrudHandler[entity.MedicalOrder]
	OrderResult       *handler.CrudHandler[entity.OrderResult]
	DialysisUnit      *handler.CrudHandler[entity.DialysisUnit]
	DialysisSession   *handler.CrudHandler[entity.DialysisSession]
	EmergencyCase     *handler.CrudHandler[entity.EmergencyCase]
	ReportTemplate    *handler.CrudHandler[entity.ReportTemplate]
	ReportExecution   *handler.CrudHandler[entity.ReportExecution]
	CreditCompany     *handler.CrudHandler[entity.CreditCompany]
}

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	admissionHandler   *handler.AdmissionHandler
	inventoryHandler   *handler.InventoryHandler
	billingHandler     *handler.BillingHandler
	serviceHandler     *handler.ServiceHandler
	hrHandler          *handler.HrHandler
	labHandler         *handler.LabHandler
	financeHandler     *handler.FinanceHandler
	fleetHandler       *handler.FleetHandler
	dashboardHandler   *handler.DashboardHandler
	auditLogHandler    *handler.AuditLogHandler
	crudHandlers       *CrudHandlers
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	admissionHandler *handler.AdmissionHandler,
	inventoryHandler *handler.InventoryHandler,
	billingHandler *handler.BillingHandler,
	serviceHandler *handler.ServiceHandler,
	hrHandler *handler.HrHandler,
	labHandler *handler.LabHandler,
	financeHandler *handler.FinanceHandler,
	fleetHandler *handler.FleetHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	crudHandlers *CrudHandlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		admissionHandler:   admissionHandler,
		inventoryHandler:   inventoryHandler,
		billingHandler:     billingHandler,
		serviceHandler:     serviceHandler,
		hrHandler:          hrHandler,
		labHandler:         labHandler,
		financeHandler:     financeHandler,
		fleetHandler:       fleetHandler,
		dashboardHandler:   dashboardHandler,
		auditLogHandler:    auditLogHandler,
		crudHandlers:       crudHandlers,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Everything below requires authentication
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// User management (admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeactivateUser).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/employees", r.hrHandler.CreateEmployee).Methods(http.MethodPost)
	admin.HandleFunc("/employees", r.hrHandler.GetEmployees).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{id}", r.hrHandler.GetEmployee).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{id}", r.hrHandler.UpdateEmployee).Methods(http.MethodPut)
	admin.HandleFunc("/employees/{employeeId}/leaves", r.hrHandler.GetEmployeeLeaves).Methods(http.MethodGet)
	admin.HandleFunc("/leaves", r.hrHandler.GetLeaves).Methods(http.MethodGet)
	admin.HandleFunc("/leaves/{id}", r.hrHandler.UpdateLeave).Methods(http.MethodPut)

	protected.HandleFunc("/doctors", r.userHandler.GetDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/leaves", r.hrHandler.CreateLeave).Methods(http.MethodPost)

	// Patient registry
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.GetPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/recent", r.patientHandler.GetRecentPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeactivatePatient).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/today", r.appointmentHandler.GetTodayAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{patientId}/appointments", r.appointmentHandler.GetPatientAppointments).Methods(http.MethodGet)

	// Clinical staff only
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireClinical)

	clinical.HandleFunc("/medical-records", r.appointmentHandler.CreateMedicalRecord).Methods(http.MethodPost)
	clinical.HandleFunc("/patients/{patientId}/medical-records", r.appointmentHandler.GetPatientMedicalRecords).Methods(http.MethodGet)

	// Wards, beds and admissions
	clinical.HandleFunc("/wards", r.admissionHandler.CreateWard).Methods(http.MethodPost)
	protected.HandleFunc("/wards", r.admissionHandler.GetWards).Methods(http.MethodGet)
	clinical.HandleFunc("/wards/{id}", r.admissionHandler.UpdateWard).Methods(http.MethodPut)
	protected.HandleFunc("/wards/{wardId}/beds", r.admissionHandler.GetBedsByWard).Methods(http.MethodGet)
	clinical.HandleFunc("/beds", r.admissionHandler.CreateBed).Methods(http.MethodPost)
	protected.HandleFunc("/beds", r.admissionHandler.GetBeds).Methods(http.MethodGet)
	protected.HandleFunc("/beds/available", r.admissionHandler.GetAvailableBeds).Methods(http.MethodGet)
	clinical.HandleFunc("/beds/{id}", r.admissionHandler.UpdateBed).Methods(http.MethodPut)
	clinical.HandleFunc("/admissions", r.admissionHandler.AdmitPatient).Methods(http.MethodPost)
	protected.HandleFunc("/admissions", r.admissionHandler.GetAdmissions).Methods(http.MethodGet)
	protected.HandleFunc("/admissions/{id}", r.admissionHandler.GetAdmission).Methods(http.MethodGet)
	clinical.HandleFunc("/admissions/{id}", r.admissionHandler.UpdateAdmission).Methods(http.MethodPut)
	clinical.HandleFunc("/admissions/{id}/discharge", r.admissionHandler.DischargePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{patientId}/admissions", r.admissionHandler.GetPatientAdmissions).Methods(http.MethodGet)

	// Pharmacy and inventory
	protected.HandleFunc("/stores", r.inventoryHandler.CreateStore).Methods(http.MethodPost)
	protected.HandleFunc("/stores", r.inventoryHandler.GetStores).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{id}", r.inventoryHandler.UpdateStore).Methods(http.MethodPut)
	protected.HandleFunc("/items", r.inventoryHandler.CreateItem).Methods(http.MethodPost)
	protected.HandleFunc("/items", r.inventoryHandler.GetItems).Methods(http.MethodGet)
	protected.HandleFunc("/items/low-stock", r.inventoryHandler.GetLowStockItems).Methods(http.MethodGet)
	protected.HandleFunc("/items/{id}", r.inventoryHandler.GetItem).Methods(http.MethodGet)
	protected.HandleFunc("/items/{id}", r.inventoryHandler.UpdateItem).Methods(http.MethodPut)
	protected.HandleFunc("/transfers", r.inventoryHandler.CreateTransfer).Methods(http.MethodPost)
	protected.HandleFunc("/transfers", r.inventoryHandler.GetTransfers).Methods(http.MethodGet)
	protected.HandleFunc("/transfers/{id}", r.inventoryHandler.UpdateTransfer).Methods(http.MethodPut)

	// Billing and finance
	finance := api.PathPrefix("").Subrouter()
	finance.Use(r.authMiddleware.Authenticate)
	finance.Use(middleware.RequireFinance)

	finance.HandleFunc("/bills", r.billingHandler.CreateBill).Methods(http.MethodPost)
	finance.HandleFunc("/bills", r.billingHandler.GetBills).Methods(http.MethodGet)
	finance.HandleFunc("/bills/{id}", r.billingHandler.GetBill).Methods(http.MethodGet)
	finance.HandleFunc("/bills/{id}", r.billingHandler.UpdateBill).Methods(http.MethodPut)
	finance.HandleFunc("/bills/{id}/payments", r.billingHandler.RecordPayment).Methods(http.MethodPost)
	finance.HandleFunc("/patients/{patientId}/bills", r.billingHandler.GetPatientBills).Methods(http.MethodGet)

	finance.HandleFunc("/accounts", r.financeHandler.CreateAccount).Methods(http.MethodPost)
	finance.HandleFunc("/accounts", r.financeHandler.GetAccounts).Methods(http.MethodGet)
	finance.HandleFunc("/accounts/{id}", r.financeHandler.GetAccount).Methods(http.MethodGet)
	finance.HandleFunc("/accounts/{id}", r.financeHandler.UpdateAccount).Methods(http.MethodPut)
	finance.HandleFunc("/accounts/{accountId}/transactions", r.financeHandler.GetAccountTransactions).Methods(http.MethodGet)
	finance.HandleFunc("/transactions", r.financeHandler.PostTransaction).Methods(http.MethodPost)
	finance.HandleFunc("/transactions", r.financeHandler.GetTransactions).Methods(http.MethodGet)
	finance.HandleFunc("/pos-terminals", r.financeHandler.CreateTerminal).Methods(http.MethodPost)
	finance.HandleFunc("/pos-terminals", r.financeHandler.GetTerminals).Methods(http.MethodGet)
	finance.HandleFunc("/pos-terminals/{id}", r.financeHandler.UpdateTerminal).Methods(http.MethodPut)
	finance.HandleFunc("/pos-transactions", r.financeHandler.CreatePosTransaction).Methods(http.MethodPost)
	finance.HandleFunc("/pos-transactions", r.financeHandler.GetPosTransactions).Methods(http.MethodGet)
	finance.HandleFunc("/pos-transactions/{id}/complete", r.financeHandler.CompletePosTransaction).Methods(http.MethodPost)
	finance.HandleFunc("/pos-transactions/{id}/cancel", r.financeHandler.CancelPosTransaction).Methods(http.MethodPost)

	// Service catalog and orders
	protected.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services", r.serviceHandler.GetServices).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}/prices", r.serviceHandler.SetCurrentPrice).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}/prices", r.serviceHandler.GetPriceHistory).Methods(http.MethodGet)
	protected.HandleFunc("/service-orders", r.serviceHandler.CreateOrder).Methods(http.MethodPost)
	protected.HandleFunc("/service-orders", r.serviceHandler.GetOrders).Methods(http.MethodGet)
	protected.HandleFunc("/service-orders/{id}", r.serviceHandler.GetOrder).Methods(http.MethodGet)
	protected.HandleFunc("/service-orders/{id}", r.serviceHandler.UpdateOrder).Methods(http.MethodPut)
	protected.HandleFunc("/service-orders/{id}/items", r.serviceHandler.AddOrderItem).Methods(http.MethodPost)
	protected.HandleFunc("/service-orders/{id}/items/{itemId}", r.serviceHandler.UpdateOrderItem).Methods(http.MethodPut)

	// Lab integration
	clinical.HandleFunc("/lab-systems", r.labHandler.CreateSystem).Methods(http.MethodPost)
	clinical.HandleFunc("/lab-systems", r.labHandler.GetSystems).Methods(http.MethodGet)
	clinical.HandleFunc("/lab-systems/{id}", r.labHandler.GetSystem).Methods(http.MethodGet)
	clinical.HandleFunc("/lab-systems/{id}", r.labHandler.UpdateSystem).Methods(http.MethodPut)
	clinical.HandleFunc("/lab-systems/{id}/test-connection", r.labHandler.TestConnection).Methods(http.MethodPost)
	clinical.HandleFunc("/lab-systems/{id}/sync", r.labHandler.SyncResults).Methods(http.MethodPost)
	clinical.HandleFunc("/lab-results", r.labHandler.CreateResult).Methods(http.MethodPost)
	clinical.HandleFunc("/lab-results", r.labHandler.GetResults).Methods(http.MethodGet)
	clinical.HandleFunc("/lab-results/{id}", r.labHandler.UpdateResult).Methods(http.MethodPut)
	clinical.HandleFunc("/patients/{patientId}/lab-results", r.labHandler.GetPatientResults).Methods(http.MethodGet)

	// Fleet
	protected.HandleFunc("/vehicles", r.fleetHandler.CreateVehicle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", r.fleetHandler.GetVehicles).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", r.fleetHandler.GetVehicle).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", r.fleetHandler.UpdateVehicle).Methods(http.MethodPut)
	protected.HandleFunc("/vehicle-assignments", r.fleetHandler.CreateAssignment).Methods(http.MethodPost)
	protected.HandleFunc("/vehicle-assignments", r.fleetHandler.GetAssignments).Methods(http.MethodGet)
	protected.HandleFunc("/vehicle-assignments/{id}", r.fleetHandler.UpdateAssignment).Methods(http.MethodPut)

	// Clinical long tail
	registerCrud(clinical, "/clinical-guidelines", r.crudHandlers.ClinicalGuideline)
	registerCrud(clinical, "/diagnostic-sessions", r.crudHandlers.DiagnosticSession)
	registerCrud(clinical, "/treatment-plans", r.crudHandlers.TreatmentPlan)
	registerCrud(clinical, "/medical-orders", r.crudHandlers.MedicalOrder)
	registerCrud(clinical, "/order-results", r.crudHandlers.OrderResult)
	registerCrud(clinical, "/dialysis-units", r.crudHandlers.DialysisUnit)
	registerCrud(clinical, "/dialysis-sessions", r.crudHandlers.DialysisSession)
	registerCrud(clinical, "/emergency-cases", r.crudHandlers.EmergencyCase)
	registerCrud(protected, "/report-templates", r.crudHandlers.ReportTemplate)
	registerCrud(protected, "/report-executions", r.crudHandlers.ReportExecution)
	registerCrud(finance, "/credit-companies", r.crudHandlers.CreditCompany)

	// Dashboard
	protected.HandleFunc("/dashboard/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/resource-utilization", r.dashboardHandler.GetResourceUtilization).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func registerCrud[T any](sr *mux.Router, path string, h *handler.CrudHandler[T]) {
	sr.HandleFunc(path, h.Create).Methods(http.MethodPost)
	sr.HandleFunc(path, h.List).Methods(http.MethodGet)
	sr.HandleFunc(path+"/{id}", h.Get).Methods(http.MethodGet)
	sr.HandleFunc(path+"/{id}", h.Update).Methods(http.MethodPut)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
