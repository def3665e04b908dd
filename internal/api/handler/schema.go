package handler

import (
	"time"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerClientRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Phone     string `json:"phone"      validate:"required"`
	Password  string `json:"password"   validate:"required,min=4"`
}

type loginClientRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type recoverPasswordRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type recoverPasswordResponse struct {
	Password string `json:"password"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type clientSessionResponse struct {
	Token  string         `json:"token"`
	Client clientResponse `json:"client"`
}

// adminLoginRequest fields may be empty: an empty press still counts toward
// credential disclosure.
type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token          string                   `json:"token,omitempty"`
	Credentials    *domain.AdminCredentials `json:"credentials,omitempty"`
	DisplaySeconds int                      `json:"display_seconds,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=4"`
}

// --- Catalog ---

type articleRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	PriceFC     float64  `json:"price_fc"    validate:"gte=0"`
	PriceUSD    float64  `json:"price_usd"   validate:"gte=0"`
	Category    string   `json:"category"    validate:"omitempty,category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"      validate:"omitempty,dive,url"`
	Stock       int      `json:"stock"       validate:"gte=0"`
	Published   bool     `json:"published"`
}

type articlePatchRequest struct {
	Name        *string   `json:"name"        validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	PriceFC     *float64  `json:"price_fc"    validate:"omitempty,gte=0"`
	PriceUSD    *float64  `json:"price_usd"   validate:"omitempty,gte=0"`
	Category    *string   `json:"category"    validate:"omitempty,category"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Images      *[]string `json:"images"      validate:"omitempty,dive,url"`
	Stock       *int      `json:"stock"       validate:"omitempty,gte=0"`
	Published   *bool     `json:"published"`
}

type catalogResponse struct {
	Articles   []domain.Article `json:"articles"`
	Counts     map[string]int   `json:"counts"`
	Total      int              `json:"total"`
	Categories []string         `json:"categories"`
}

// --- Orders ---

type placeOrderRequest struct {
	ArticleID string `json:"article_id" validate:"required"`
}

type placeOrderResponse struct {
	Order        domain.Order `json:"order"`
	DispatchURL  string       `json:"dispatch_url"`
	DispatchKind string       `json:"dispatch_kind"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed delivered"`
}

// --- Notifications ---

type notificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

type alertsResponse struct {
	Alerts []domain.Alert `json:"alerts"`
}
