package dto

type UpdateStockInput struct {
	ProductID string `json:"productId"`
	Amount    int    `json:"amount"`
}

type RegisterFaceInput struct {
	UserID   string `json:"userId"`
	FaceData string `json:"faceData"`
}

type ResetFaceInput struct {
	UserID string `json:"userId"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}
