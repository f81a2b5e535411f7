package dto

type AddToCartRequest struct {
	ItemID string `json:"item_id"`
}

type CheckoutRequest struct {
	Token string `json:"token"`
}

type UpdatePermissionsRequest struct {
	UserID      string   `json:"user_id"`
	Permissions []string `json:"permissions"`
}
