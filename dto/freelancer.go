package dto

type CreateFreelancerBidRequest struct {
	Skill     string `json:"skill" binding:"required"`
	BidNumber int    `json:"bidNumber" binding:"required"`
	BidDate   string `json:"bidDate"`
}

type UpdateFreelancerBidRequest struct {
	Skill     string `json:"skill"`
	BidNumber *int   `json:"bidNumber"`
	BidDate   string `json:"bidDate"`
}

type FreelancerBidResponse struct {
	ID        uint   `json:"id"`
	Skill     string `json:"skill"`
	BidNumber int    `json:"bidNumber"`
	BidDate   string `json:"bidDate"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	UserID    uint   `json:"userId"`
}

type CreateFreelancerChatRequest struct {
	ClientName    string  `json:"clientName" binding:"required"`
	ClientCountry string  `json:"clientCountry" binding:"required"`
	ProjectTitle  string  `json:"projectTitle" binding:"required"`
	Review        float64 `json:"review" validate:"gte=0,lte=5"`
	ReviewNumber  int     `json:"reviewNumber" validate:"gte=0"`
	SpentMoney    float64 `json:"spentMoney" validate:"gte=0"`
	IsAwarded     bool    `json:"isAwarded"`
	ChatDate      string  `json:"chatDate"`
}

type UpdateFreelancerChatRequest struct {
	ClientName    string   `json:"clientName"`
	ClientCountry string   `json:"clientCountry"`
	ProjectTitle  string   `json:"projectTitle"`
	Review        *float64 `json:"review" validate:"omitempty,gte=0,lte=5"`
	ReviewNumber  *int     `json:"reviewNumber" validate:"omitempty,gte=0"`
	SpentMoney    *float64 `json:"spentMoney" validate:"omitempty,gte=0"`
	IsAwarded     *bool    `json:"isAwarded"`
	ChatDate      string   `json:"chatDate"`
}

type FreelancerChatResponse struct {
	ID            uint    `json:"id"`
	ClientName    string  `json:"clientName"`
	ClientCountry string  `json:"clientCountry"`
	ProjectTitle  string  `json:"projectTitle"`
	Review        float64 `json:"review"`
	ReviewNumber  int     `json:"reviewNumber"`
	SpentMoney    float64 `json:"spentMoney"`
	IsAwarded     bool    `json:"isAwarded"`
	ChatDate      string  `json:"chatDate"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
	UserID        uint    `json:"userId"`
}
