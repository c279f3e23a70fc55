package models

type ErrorResponse struct {
	Code    string `json:"code" example:"INVALID_STATE"`
	Error   string `json:"error" example:"leave request is already approved"`
	Details any    `json:"details,omitempty"`
}

type LeaveRequestResponse struct {
	Message string       `json:"message" example:"Leave request approved successfully"`
	Data    LeaveRequest `json:"data"`
}

type LeaveRequestListResponse struct {
	Data  []LeaveRequest `json:"data"`
	Total int            `json:"total" example:"3"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Notification marked as read"`
}
