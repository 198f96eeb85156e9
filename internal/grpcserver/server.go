package grpcserver

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	schedulingv1 "github.com/Leganyst/scheduling-core/internal/api/schedulingv1"
	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/pagination"
	"github.com/Leganyst/scheduling-core/internal/repository"
	"github.com/Leganyst/scheduling-core/internal/scheduling"
	"github.com/Leganyst/scheduling-core/internal/service"
)

// Server — транспортный слой: разбирает запросы, зовёт сервисы, переводит ошибки в статусы.
type Server struct {
	schedulingv1.UnimplementedSchedulingServiceServer

	appointments *service.AppointmentService
	customers    *service.CustomerService
	directory    *service.DirectoryService
	reference    *time.Location
}

// New собирает обработчик. reference — бизнес-зона для полей *_reference.
func New(appointments *service.AppointmentService, customers *service.CustomerService, directory *service.DirectoryService, reference *time.Location) *Server {
	if reference == nil {
		reference = time.UTC
	}
	return &Server{
		appointments: appointments,
		customers:    customers,
		directory:    directory,
		reference:    reference,
	}
}

// NewGRPCServer создаёт grpc.Server с трассировкой, логированием, request id
// и стандартным health-сервисом, и регистрирует на нём srv.
func NewGRPCServer(log *zap.Logger, srv schedulingv1.SchedulingServiceServer, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	base := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			UnaryRecovery(log),
			UnaryRequestID(),
			UnaryLogging(log),
		),
	}
	s := grpc.NewServer(append(base, opts...)...)

	schedulingv1.RegisterSchedulingServiceServer(s, srv)

	hs := health.NewServer()
	hs.SetServingStatus(schedulingv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return s, hs
}

func (s *Server) ValidateAppointment(ctx context.Context, req *schedulingv1.ValidateAppointmentRequest) (*schedulingv1.ValidateAppointmentResponse, error) {
	in, err := appointmentInput(req.Appointment, "")
	if err != nil {
		return nil, toStatus(err)
	}

	valid, err := s.appointments.Validate(ctx, in, req.ExcludeAppointmentID)
	if r, ok := scheduling.AsRejection(err); ok {
		return &schedulingv1.ValidateAppointmentResponse{
			Valid:                 false,
			Reason:                string(r.Reason),
			Message:               r.Message,
			ConflictAppointmentID: r.ConflictID,
		}, nil
	}
	if err != nil {
		return nil, toStatus(err)
	}

	return &schedulingv1.ValidateAppointmentResponse{
		Valid:          true,
		StartUTC:       formatTime(valid.Start, time.UTC),
		EndUTC:         formatTime(valid.End, time.UTC),
		StartReference: valid.ReferenceStart.Format(time.RFC3339),
		EndReference:   valid.ReferenceEnd.Format(time.RFC3339),
	}, nil
}

func (s *Server) CreateAppointment(ctx context.Context, req *schedulingv1.CreateAppointmentRequest) (*schedulingv1.CreateAppointmentResponse, error) {
	in, err := appointmentInput(req.Appointment, req.Actor)
	if err != nil {
		return nil, toStatus(err)
	}
	a, err := s.appointments.Create(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.CreateAppointmentResponse{Appointment: toAppointment(a, s.reference)}, nil
}

func (s *Server) UpdateAppointment(ctx context.Context, req *schedulingv1.UpdateAppointmentRequest) (*schedulingv1.UpdateAppointmentResponse, error) {
	in, err := appointmentInput(req.Appointment, req.Actor)
	if err != nil {
		return nil, toStatus(err)
	}
	a, err := s.appointments.Update(ctx, req.ID, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.UpdateAppointmentResponse{Appointment: toAppointment(a, s.reference)}, nil
}

func (s *Server) DeleteAppointment(ctx context.Context, req *schedulingv1.DeleteAppointmentRequest) (*schedulingv1.DeleteAppointmentResponse, error) {
	if err := s.appointments.Delete(ctx, req.ID, req.Actor); err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.DeleteAppointmentResponse{}, nil
}

func (s *Server) GetAppointment(ctx context.Context, req *schedulingv1.GetAppointmentRequest) (*schedulingv1.GetAppointmentResponse, error) {
	a, err := s.appointments.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.GetAppointmentResponse{Appointment: toAppointment(a, s.reference)}, nil
}

func (s *Server) ListAppointments(ctx context.Context, req *schedulingv1.ListAppointmentsRequest) (*schedulingv1.ListAppointmentsResponse, error) {
	from, err := parseInstant("from", req.From)
	if err != nil {
		return nil, toStatus(err)
	}
	to, err := parseInstant("to", req.To)
	if err != nil {
		return nil, toStatus(err)
	}

	page, err := s.appointments.List(ctx, repository.AppointmentFilter{
		CustomerID: req.CustomerID,
		UserID:     req.UserID,
		ContactID:  req.ContactID,
		Type:       req.Type,
		From:       from,
		To:         to,
	}, pageRequest(req.Page, req.PageSize))
	if err != nil {
		return nil, toStatus(err)
	}

	out := pagination.Map(page, func(a model.Appointment) schedulingv1.Appointment {
		return toAppointment(&a, s.reference)
	})
	return &schedulingv1.ListAppointmentsResponse{
		Appointments: out.Items,
		Page:         int32(page.Page),
		PageSize:     int32(page.PageSize),
		Total:        page.Total,
		HasNext:      page.HasNext,
	}, nil
}

func (s *Server) ListUpcomingAppointments(ctx context.Context, req *schedulingv1.ListUpcomingAppointmentsRequest) (*schedulingv1.ListUpcomingAppointmentsResponse, error) {
	loc, err := parseZone(req.TimeZone)
	if err != nil {
		return nil, toStatus(err)
	}
	items, err := s.appointments.Upcoming(ctx, req.UserID, loc)
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]schedulingv1.UpcomingAppointment, 0, len(items))
	for i := range items {
		out = append(out, schedulingv1.UpcomingAppointment{
			Appointment: toAppointment(&items[i].Appointment, s.reference),
			Display:     items[i].Display,
		})
	}
	return &schedulingv1.ListUpcomingAppointmentsResponse{Appointments: out}, nil
}

func (s *Server) CreateCustomer(ctx context.Context, req *schedulingv1.CreateCustomerRequest) (*schedulingv1.CreateCustomerResponse, error) {
	c, err := s.customers.Create(ctx, customerInput(req.Customer, req.Actor))
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.CreateCustomerResponse{Customer: toCustomer(c)}, nil
}

func (s *Server) UpdateCustomer(ctx context.Context, req *schedulingv1.UpdateCustomerRequest) (*schedulingv1.UpdateCustomerResponse, error) {
	c, err := s.customers.Update(ctx, req.Customer.ID, customerInput(req.Customer, req.Actor))
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.UpdateCustomerResponse{Customer: toCustomer(c)}, nil
}

func (s *Server) DeleteCustomer(ctx context.Context, req *schedulingv1.DeleteCustomerRequest) (*schedulingv1.DeleteCustomerResponse, error) {
	n, err := s.customers.Delete(ctx, req.ID, req.Actor)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.DeleteCustomerResponse{DeletedAppointments: n}, nil
}

func (s *Server) ListCustomers(ctx context.Context, req *schedulingv1.ListCustomersRequest) (*schedulingv1.ListCustomersResponse, error) {
	page, err := s.customers.List(ctx, req.Name, pageRequest(req.Page, req.PageSize))
	if err != nil {
		return nil, toStatus(err)
	}

	out := pagination.Map(page, func(c model.Customer) schedulingv1.Customer { return toCustomer(&c) })
	return &schedulingv1.ListCustomersResponse{
		Customers: out.Items,
		Page:      int32(page.Page),
		PageSize:  int32(page.PageSize),
		Total:     page.Total,
		HasNext:   page.HasNext,
	}, nil
}

func (s *Server) GetCustomer(ctx context.Context, req *schedulingv1.GetCustomerRequest) (*schedulingv1.GetCustomerResponse, error) {
	c, err := s.customers.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.GetCustomerResponse{Customer: toCustomer(c)}, nil
}

func (s *Server) RegisterUser(ctx context.Context, req *schedulingv1.RegisterUserRequest) (*schedulingv1.RegisterUserResponse, error) {
	u, err := s.directory.RegisterUser(ctx, req.Name)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.RegisterUserResponse{User: toUser(*u)}, nil
}

func (s *Server) ListUsers(ctx context.Context, req *schedulingv1.ListUsersRequest) (*schedulingv1.ListUsersResponse, error) {
	page, err := s.directory.ListUsers(ctx, pageRequest(req.Page, req.PageSize))
	if err != nil {
		return nil, toStatus(err)
	}

	out := pagination.Map(page, toUser)
	return &schedulingv1.ListUsersResponse{
		Users:    out.Items,
		Page:     int32(out.Page),
		PageSize: int32(out.PageSize),
		Total:    out.Total,
		HasNext:  out.HasNext,
	}, nil
}

func (s *Server) CreateContact(ctx context.Context, req *schedulingv1.CreateContactRequest) (*schedulingv1.CreateContactResponse, error) {
	c, err := s.directory.CreateContact(ctx, service.ContactInput{Name: req.Contact.Name, Email: req.Contact.Email})
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulingv1.CreateContactResponse{Contact: toContact(*c)}, nil
}

func (s *Server) ListContacts(ctx context.Context, req *schedulingv1.ListContactsRequest) (*schedulingv1.ListContactsResponse, error) {
	page, err := s.directory.ListContacts(ctx, pageRequest(req.Page, req.PageSize))
	if err != nil {
		return nil, toStatus(err)
	}

	out := pagination.Map(page, toContact)
	return &schedulingv1.ListContactsResponse{
		Contacts: out.Items,
		Page:     int32(out.Page),
		PageSize: int32(out.PageSize),
		Total:    out.Total,
		HasNext:  out.HasNext,
	}, nil
}
