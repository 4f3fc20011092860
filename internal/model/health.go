package model

const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

type HealthRequest struct{}

type HealthDatabase struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

type HealthResponse struct {
	Status
	Timestamp   string         `json:"timestamp"`
	Environment string         `json:"environment"`
	Database    HealthDatabase `json:"database"`
}
