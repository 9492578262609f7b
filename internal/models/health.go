package models

import "time"

type HealthResponse struct {
	ResponseCode int       `json:"response_code"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	Connection   bool      `json:"connection"`
	Timestamp    time.Time `json:"timestamp"`
}
