package types

// Operation inputs. Required vs optional fields are enumerated explicitly
// and validated at the store boundary before any state is touched.

type SubmitRequestInput struct {
	Title              string   `json:"title" form:"title" validate:"required"`
	Description        string   `json:"description" form:"description"`
	ResourceType       string   `json:"resourceType" form:"resourceType"`
	Category           string   `json:"category" form:"category"`
	Urgency            Urgency  `json:"urgency" form:"urgency" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	BeneficiaryName    string   `json:"beneficiaryName" form:"beneficiaryName" validate:"required"`
	BeneficiaryType    string   `json:"beneficiaryType" form:"beneficiaryType"`
	BeneficiaryContact string   `json:"beneficiaryContact" form:"beneficiaryContact"`
	RequestedAmount    float64  `json:"requestedAmount" form:"requestedAmount" validate:"gte=0"`
	Evidence           []string `json:"evidence" form:"evidence"`
}

type ReviewRequestInput struct {
	Status  RequestStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Comment string        `json:"comment"`
}

type RecordDonationInput struct {
	PublicationID    int          `json:"publicationId" validate:"gte=0"`
	Kind             DonationKind `json:"kind" validate:"required,oneof=MONEY GOODS"`
	Amount           float64      `json:"amount" validate:"gte=0"`
	Currency         string       `json:"currency"`
	GoodsDescription string       `json:"goodsDescription"`
	DonorName        string       `json:"donorName"`
	DonorContact     string       `json:"donorContact"`
	ReceiptRef       string       `json:"receiptRef"`
}

type RegisterInventoryInput struct {
	DonationID  int     `json:"donationId" validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit"`
	Location    string  `json:"location"`
}

type RegisterEventInput struct {
	Name             string      `json:"name" validate:"required"`
	PublicationID    int         `json:"publicationId" validate:"gte=0"`
	PublicationTitle string      `json:"publicationTitle"`
	Type             string      `json:"type"`
	Date             string      `json:"date"`
	Venue            string      `json:"venue"`
	FundraisingGoal  float64     `json:"fundraisingGoal" validate:"gte=0"`
	OutreachChannel  string      `json:"outreachChannel"`
	Status           EventStatus `json:"status" validate:"omitempty,oneof=PLANNED IN_PROGRESS FINISHED"`
	Description      string      `json:"description"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
