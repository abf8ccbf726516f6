package invoice

// BusinessEntity describes one of the three billing entities invoices are
// issued under. Each keeps its own route prefix, number sequence, and
// record set.
type BusinessEntity struct {
	Key          string
	RoutePrefix  string
	DisplayName  string
	NumberPrefix string
}

var (
	MHDTech = BusinessEntity{
		Key:          "mhdtech",
		RoutePrefix:  "/invoiceMHD",
		DisplayName:  "MHD Tech",
		NumberPrefix: "MHD",
	}

	EnoylityStudio = BusinessEntity{
		Key:          "enoylitystudio",
		RoutePrefix:  "/invoiceEnoylity",
		DisplayName:  "Enoylity Studio",
		NumberPrefix: "ENS",
	}

	EnoylityTech = BusinessEntity{
		Key:          "enoylitytech",
		RoutePrefix:  "/invoiceEnoylityLLC",
		DisplayName:  "Enoylity Media Creations LLC",
		NumberPrefix: "EMC",
	}
)

// BusinessEntities in sidebar order.
var BusinessEntities = []BusinessEntity{MHDTech, EnoylityStudio, EnoylityTech}

// Payment method codes as the dashboard sends them.
const (
	PaymentPayPal       = 0
	PaymentBankTransfer = 1
	PaymentOther        = 2
)
