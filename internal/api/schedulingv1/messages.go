package schedulingv1

// Время на входе — настенное "2006-01-02T15:04[:05]" плюс необязательная зона IANA.
// Время на выходе — RFC 3339: *_utc в UTC, *_reference в бизнес-зоне.

type AppointmentInput struct {
	CustomerID  int64  `json:"customer_id"`
	UserID      int64  `json:"user_id"`
	ContactID   int64  `json:"contact_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
	TimeZone    string `json:"time_zone,omitempty"`
}

type Appointment struct {
	ID             int64  `json:"id"`
	CustomerID     int64  `json:"customer_id"`
	UserID         int64  `json:"user_id"`
	ContactID      int64  `json:"contact_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Type           string `json:"type"`
	StartUTC       string `json:"start_utc"`
	EndUTC         string `json:"end_utc"`
	StartReference string `json:"start_reference"`
	EndReference   string `json:"end_reference"`
	CreatedAt      string `json:"created_at,omitempty"`
	CreatedBy      string `json:"created_by,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	UpdatedBy      string `json:"updated_by,omitempty"`
}

type ValidateAppointmentRequest struct {
	Appointment          AppointmentInput `json:"appointment"`
	ExcludeAppointmentID *int64           `json:"exclude_appointment_id,omitempty"`
}

// ValidateAppointmentResponse — отказ валидации приходит в теле (Valid=false),
// сбои системы — статусом gRPC.
type ValidateAppointmentResponse struct {
	Valid                 bool   `json:"valid"`
	Reason                string `json:"reason,omitempty"`
	Message               string `json:"message,omitempty"`
	ConflictAppointmentID int64  `json:"conflict_appointment_id,omitempty"`
	StartUTC              string `json:"start_utc,omitempty"`
	EndUTC                string `json:"end_utc,omitempty"`
	StartReference        string `json:"start_reference,omitempty"`
	EndReference          string `json:"end_reference,omitempty"`
}

type CreateAppointmentRequest struct {
	Appointment AppointmentInput `json:"appointment"`
	Actor       string           `json:"actor,omitempty"`
}

type CreateAppointmentResponse struct {
	Appointment Appointment `json:"appointment"`
}

type UpdateAppointmentRequest struct {
	ID          int64            `json:"id"`
	Appointment AppointmentInput `json:"appointment"`
	Actor       string           `json:"actor,omitempty"`
}

type UpdateAppointmentResponse struct {
	Appointment Appointment `json:"appointment"`
}

type DeleteAppointmentRequest struct {
	ID    int64  `json:"id"`
	Actor string `json:"actor,omitempty"`
}

type DeleteAppointmentResponse struct{}

type GetAppointmentRequest struct {
	ID int64 `json:"id"`
}

type GetAppointmentResponse struct {
	Appointment Appointment `json:"appointment"`
}

type ListAppointmentsRequest struct {
	CustomerID int64  `json:"customer_id,omitempty"`
	UserID     int64  `json:"user_id,omitempty"`
	ContactID  int64  `json:"contact_id,omitempty"`
	Type       string `json:"type,omitempty"`
	// Границы — моменты RFC 3339; выбираются встречи, пересекающие [from, to).
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Page     int32  `json:"page,omitempty"`
	PageSize int32  `json:"page_size,omitempty"`
}

type ListAppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
	Page         int32         `json:"page"`
	PageSize     int32         `json:"page_size"`
	Total        int64         `json:"total"`
	HasNext      bool          `json:"has_next"`
}

type ListUpcomingAppointmentsRequest struct {
	UserID   int64  `json:"user_id"`
	TimeZone string `json:"time_zone,omitempty"`
}

type UpcomingAppointment struct {
	Appointment Appointment `json:"appointment"`
	Display     string      `json:"display"`
}

type ListUpcomingAppointmentsResponse struct {
	Appointments []UpcomingAppointment `json:"appointments"`
}

type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Division   string `json:"division,omitempty"`
	Country    string `json:"country,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	UpdatedBy  string `json:"updated_by,omitempty"`
}

type CreateCustomerRequest struct {
	Customer Customer `json:"customer"`
	Actor    string   `json:"actor,omitempty"`
}

type CreateCustomerResponse struct {
	Customer Customer `json:"customer"`
}

type UpdateCustomerRequest struct {
	Customer Customer `json:"customer"`
	Actor    string   `json:"actor,omitempty"`
}

type UpdateCustomerResponse struct {
	Customer Customer `json:"customer"`
}

type DeleteCustomerRequest struct {
	ID    int64  `json:"id"`
	Actor string `json:"actor,omitempty"`
}

type DeleteCustomerResponse struct {
	DeletedAppointments int64 `json:"deleted_appointments"`
}

type ListCustomersRequest struct {
	Name     string `json:"name,omitempty"`
	Page     int32  `json:"page,omitempty"`
	PageSize int32  `json:"page_size,omitempty"`
}

type ListCustomersResponse struct {
	Customers []Customer `json:"customers"`
	Page      int32      `json:"page"`
	PageSize  int32      `json:"page_size"`
	Total     int64      `json:"total"`
	HasNext   bool       `json:"has_next"`
}

type GetCustomerRequest struct {
	ID int64 `json:"id"`
}

type GetCustomerResponse struct {
	Customer Customer `json:"customer"`
}

// Справочники пользователей и контактов — источники для форм записи.

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RegisterUserRequest struct {
	Name string `json:"name"`
}

type RegisterUserResponse struct {
	User User `json:"user"`
}

type ListUsersRequest struct {
	Page     int32 `json:"page,omitempty"`
	PageSize int32 `json:"page_size,omitempty"`
}

type ListUsersResponse struct {
	Users    []User `json:"users"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
	Total    int64  `json:"total"`
	HasNext  bool   `json:"has_next"`
}

type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type CreateContactRequest struct {
	Contact Contact `json:"contact"`
}

type CreateContactResponse struct {
	Contact Contact `json:"contact"`
}

type ListContactsRequest struct {
	Page     int32 `json:"page,omitempty"`
	PageSize int32 `json:"page_size,omitempty"`
}

type ListContactsResponse struct {
	Contacts []Contact `json:"contacts"`
	Page     int32     `json:"page"`
	PageSize int32     `json:"page_size"`
	Total    int64     `json:"total"`
	HasNext  bool      `json:"has_next"`
}
