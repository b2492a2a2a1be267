package models

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	ID      string `json:"id" example:"507f1f77bcf86cd799439011"`
	Role    string `json:"role" example:"employeemanager"`
}

type ValidateTokenResponse struct {
	ID   string `json:"id" example:"507f1f77bcf86cd799439011"`
	Role string `json:"role" example:"supervisor"`
}

type EmployeeResponse struct {
	Message  string   `json:"message" example:"Employee created and queued for approval"`
	Employee Employee `json:"employee"`
}

type AadharResponse struct {
	Message string `json:"message" example:"Aadhar approved"`
	Aadhar  Aadhar `json:"aadhar"`
}

type PanResponse struct {
	Message string `json:"message" example:"PAN approved"`
	Pan     Pan    `json:"pan"`
}

type BankDetailResponse struct {
	Message    string     `json:"message" example:"Bank detail approved"`
	BankDetail BankDetail `json:"bankDetail"`
}

type DeleteSuccessResponse struct {
	Message string `json:"message" example:"Record deleted"`
	ID      string `json:"id" example:"507f1f77bcf86cd799439011"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Invalid or expired token"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Access denied. Your role is not allowed on this endpoint"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Record not found"`
}

type ConflictErrorResponse struct {
	Error string `json:"error" example:"Record is no longer pending"`
}
