package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldExpenseID  = "id"
	FieldAmount     = "amount_cents"
	FieldCategory   = "category"
	FieldPayer      = "payer"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldWindow     = "window"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentNotify  = "notify"
	ComponentRelay   = "relay"
)
