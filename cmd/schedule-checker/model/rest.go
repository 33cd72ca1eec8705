package model

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type EventUpdateRequest struct {
	SerialNo *string `json:"serial_no"`
	Name     *string `json:"name"`
	Time     *string `json:"time"`
	Location *string `json:"location"`
}

type IgnoreRequest struct {
	Category ErrorCategory `json:"category"`
}

type LocationCreateRequest struct {
	Name string `json:"name"`
}

type TimeFormatCreateRequest struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

type TimeFormatFromSampleRequest struct {
	Name   string `json:"name"`
	Sample string `json:"sample"`
}
