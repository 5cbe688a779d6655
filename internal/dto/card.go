package dto

// CardRequest carries the ten contact fields for persisting a record. The
// scan endpoint pre-fills it; the operator may correct fields before saving.
type CardRequest struct {
	CompanyName  string `json:"company_name"`
	CardHolder   string `json:"card_holder"`
	Designation  string `json:"designation"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Area         string `json:"area"`
	City         string `json:"city"`
	State        string `json:"state"`
	PinCode      string `json:"pin_code"`
}

type CardResponse struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	CardHolder   string `json:"card_holder"`
	Designation  string `json:"designation"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Area         string `json:"area"`
	City         string `json:"city"`
	State        string `json:"state"`
	PinCode      string `json:"pin_code"`
	CreatedAt    string `json:"created_at"`
}

// TokenResponse is one recognized token with its bounding box and, when a
// primary rule consumed it, the name of the field it populated.
type TokenResponse struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Field      string      `json:"field,omitempty"`
	Box        BoxResponse `json:"box"`
}

type BoxResponse struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

type ScanResponse struct {
	Card     CardRequest     `json:"card"`
	Tokens   []TokenResponse `json:"tokens"`
	ImageURL string          `json:"image_url"`
}

// UpdateFieldRequest names one of the ten card columns and its new value.
type UpdateFieldRequest struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}
