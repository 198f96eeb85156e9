package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Leganyst/scheduling-core/internal/model"
	"github.com/Leganyst/scheduling-core/internal/pagination"
	"github.com/Leganyst/scheduling-core/internal/repository"
)

// Ограничения колонок users.name и contacts.name/email.
const (
	maxNameLen  = 50
	maxEmailLen = 255
)

type ContactInput struct {
	Name  string
	Email string
}

func (in ContactInput) contact() (*model.Contact, error) {
	c := &model.Contact{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
	}
	if c.Name == "" {
		return nil, fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(c.Name) > maxNameLen {
		return nil, fmt.Errorf("%w: contact name is longer than %d", ErrInvalidInput, maxNameLen)
	}
	if c.Email != "" {
		if len(c.Email) > maxEmailLen {
			return nil, fmt.Errorf("%w: email is longer than %d", ErrInvalidInput, maxEmailLen)
		}
		addr, err := mail.ParseAddress(c.Email)
		if err != nil || addr.Address != c.Email {
			return nil, fmt.Errorf("%w: malformed email %q", ErrInvalidInput, c.Email)
		}
	}
	return c, nil
}

// DirectoryService ведёт справочники пользователей и контактов,
// на которые ссылаются встречи.
type DirectoryService struct {
	users    *repository.GormUserRepository
	contacts *repository.GormContactRepository
	log      *zap.Logger
}

func NewDirectoryService(d Deps) *DirectoryService {
	d = d.withDefaults()
	return &DirectoryService{
		users:    repository.NewGormUserRepository(d.DB),
		contacts: repository.NewGormContactRepository(d.DB),
		log:      d.Logger.Named("directory"),
	}
}

// RegisterUser возвращает пользователя с таким именем, создавая его при первом обращении.
func (s *DirectoryService) RegisterUser(ctx context.Context, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return nil, fmt.Errorf("%w: user name is longer than %d", ErrInvalidInput, maxNameLen)
	}

	u, err := s.users.Upsert(ctx, name)
	if err != nil {
		s.log.Error("register user failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	s.log.Debug("user registered", zap.Int64("user_id", u.ID), zap.String("name", u.Name))
	return u, nil
}

func (s *DirectoryService) ListUsers(ctx context.Context, req pagination.Request) (pagination.Page[model.User], error) {
	items, err := s.users.List(ctx)
	if err != nil {
		return pagination.Page[model.User]{}, err
	}
	return pagination.Paginate(items, req), nil
}

func (s *DirectoryService) CreateContact(ctx context.Context, in ContactInput) (*model.Contact, error) {
	c, err := in.contact()
	if err != nil {
		return nil, err
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		s.log.Error("create contact failed", zap.Error(err))
		return nil, err
	}
	s.log.Info("contact created", zap.Int64("contact_id", c.ID))
	return c, nil
}

// ListContacts — контакты по имени; справочник небольшой, страница режется в памяти.
func (s *DirectoryService) ListContacts(ctx context.Context, req pagination.Request) (pagination.Page[model.Contact], error) {
	items, err := s.contacts.List(ctx)
	if err != nil {
		return pagination.Page[model.Contact]{}, err
	}
	return pagination.Paginate(items, req), nil
}
