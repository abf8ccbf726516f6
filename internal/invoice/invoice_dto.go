package invoice

type ItemPayload struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required"`
}

// GenerateInvoiceRequest is submitted once per invoice; records are never
// mutated afterwards, only re-read as a template for the next one.
type GenerateInvoiceRequest struct {
	BillToName    string        `json:"bill_to_name" binding:"required"`
	BillToAddress string        `json:"bill_to_address" binding:"required"`
	BillToEmail   string        `json:"bill_to_email"`
	BillToPhone   string        `json:"bill_to_phone"`
	InvoiceDate   string        `json:"invoice_date" binding:"required"`
	DueDate       string        `json:"due_date" binding:"required"`
	Note          string        `json:"note"`
	Items         []ItemPayload `json:"items" binding:"required,min=1,dive"`
	PaymentMethod int           `json:"payment_method" binding:"min=0,max=2"`
	BankNote      string        `json:"bank_Note"`
}

type GetInvoiceRequest struct {
	ID string `json:"id" binding:"required"`
}

type DeleteInvoiceRequest struct {
	ID string `json:"id" binding:"required"`
}

// GetListRequest uses the snake_case parameter names the invoice screens
// send, unlike the employee screen's camelCase ones.
type GetListRequest struct {
	Search    string `json:"search"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type BillToResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type ItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type InvoiceResponse struct {
	ID            string         `json:"id"`
	InvoiceNumber string         `json:"invoice_number"`
	InvoiceDate   string         `json:"invoice_date"`
	DueDate       string         `json:"due_date"`
	BillTo        BillToResponse `json:"bill_to"`
	Items         []ItemResponse `json:"items"`
	PaymentMethod int            `json:"payment_method"`
	Note          string         `json:"note"`
	BankNote      string         `json:"bank_Note"`
	Total         float64        `json:"total"`
}

type ListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	TotalPages int               `json:"total_pages"`
}

// GeneratedDocument carries the PDF bytes plus the filename the client
// saves it under.
type GeneratedDocument struct {
	Invoice  InvoiceResponse
	FileName string
	PDF      []byte
}
