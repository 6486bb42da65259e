package request

// LoginRequest carries the operator password checked against the configured
// Tiime password, as the original single-operator login did.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
