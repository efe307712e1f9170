package mocks

import (
	"context"
	"net/url"
	"sync"

	"github.com/user/invoicer/internal/domain"
)

// InsertedInvoice records the arguments of an Insert call.
type InsertedInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      domain.InvoiceStatus
	Date        string
}

// UpdatedInvoice records the arguments of an Update call.
type UpdatedInvoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      domain.InvoiceStatus
}

// MockInvoiceRepository is a mock implementation of domain.InvoiceRepository
// for testing.
type MockInvoiceRepository struct {
	mu         sync.Mutex
	Inserted   []InsertedInvoice
	Updated    []UpdatedInvoice
	Deleted    []string
	ListResult []domain.InvoiceListItem
	ByIDResult *domain.Invoice
	Pages      int
	Cards      *domain.CardData
	InsertErr  error
	UpdateErr  error
	DeleteErr  error
	FetchErr   error
}

func (m *MockInvoiceRepository) Insert(ctx context.Context, customerID string, amountCents int64, status domain.InvoiceStatus, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Inserted = append(m.Inserted, InsertedInvoice{CustomerID: customerID, AmountCents: amountCents, Status: status, Date: date})
	return nil
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updated = append(m.Updated, UpdatedInvoice{ID: id, CustomerID: customerID, AmountCents: amountCents, Status: status})
	return nil
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

func (m *MockInvoiceRepository) FetchFiltered(ctx context.Context, query string, page int) ([]domain.InvoiceListItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return m.ListResult, nil
}

func (m *MockInvoiceRepository) FetchByID(ctx context.Context, id string) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	if m.ByIDResult == nil {
		return nil, domain.ErrNotFound
	}
	return m.ByIDResult, nil
}

func (m *MockInvoiceRepository) CountPages(ctx context.Context, query string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return 0, m.FetchErr
	}
	return m.Pages, nil
}

func (m *MockInvoiceRepository) CardData(ctx context.Context) (*domain.CardData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	if m.Cards == nil {
		return &domain.CardData{}, nil
	}
	return m.Cards, nil
}

// MockPageCache is an in-memory mock of domain.PageCache that records
// invalidations.
type MockPageCache struct {
	mu            sync.Mutex
	Entries       map[string][]byte
	Invalidations []string
	GetErr        error
	SetErr        error
	InvalidateErr error
}

func (m *MockPageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	payload, ok := m.Entries[path]
	return payload, ok, nil
}

func (m *MockPageCache) Set(ctx context.Context, path string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Entries == nil {
		m.Entries = make(map[string][]byte)
	}
	m.Entries[path] = payload
	return nil
}

func (m *MockPageCache) Invalidate(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InvalidateErr != nil {
		return m.InvalidateErr
	}
	m.Invalidations = append(m.Invalidations, path)
	delete(m.Entries, path)
	return nil
}

// MockCustomerRepository is a mock implementation of domain.CustomerRepository.
type MockCustomerRepository struct {
	Customers []domain.Customer
	ListErr   error
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Customers, nil
}

// MockRevenueRepository is a mock implementation of domain.RevenueRepository.
type MockRevenueRepository struct {
	Revenue []domain.Revenue
	ListErr error
}

func (m *MockRevenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Revenue, nil
}

// MockUserRepository is a mock implementation of domain.UserRepository.
type MockUserRepository struct {
	Users   map[string]*domain.User // keyed by email
	FindErr error
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	user, ok := m.Users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// MockCredentialSigner is a mock implementation of domain.CredentialSigner.
type MockCredentialSigner struct {
	mu         sync.Mutex
	Token      string
	Err        error
	Strategies []string
	Forms      []url.Values
}

func (m *MockCredentialSigner) SignIn(ctx context.Context, strategy string, form url.Values) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Strategies = append(m.Strategies, strategy)
	m.Forms = append(m.Forms, form)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}
