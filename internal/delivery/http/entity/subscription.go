package entity

type ActivateSubscriptionRequest struct {
	Months int `json:"months" validate:"required,gte=1,lte=24"`
}

type GrantSubscriptionRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	Months int  `json:"months" validate:"required,gte=1,lte=24"`
}

type SubscriptionResponse struct {
	Plan      string `json:"plan"`
	Active    bool   `json:"active"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
