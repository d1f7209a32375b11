package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo"
	entpatient "github.com/physiofit/clinic_backend/internal/repo/patient"
	"github.com/physiofit/clinic_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int
	Status  *string
	Search  string // matches first name, last name or email
	Order   string // asc | desc, by created_at
}

type CreateRequest struct {
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	DateOfBirth    *time.Time
	TaxID          *string // plaintext, stored encrypted
	MedicalNotes   *string
	ReferralSource *string
	UserID         *uuid.UUID
}

type UpdateRequest struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	DateOfBirth    *time.Time
	TaxID          *string
	Status         *string
	MedicalNotes   *string
	ReferralSource *string
	UserID         *uuid.UUID
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	Delete(ctx context.Context, patientID uuid.UUID) error

	// TaxID decrypts and returns the stored tax identifier,
	// or "" when none is recorded.
	TaxID(ctx context.Context, patientID uuid.UUID) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	encKey []byte // 32-byte AES-256 key, nil when encryption is unconfigured
}

func New(db *repo.Client, encKey []byte) Service {
	return &patientService{db: db, encKey: encKey}
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	if req.Email != nil && *req.Email != "" {
		exists, err := s.db.Patient.Query().
			Where(entpatient.EmailEQ(*req.Email), entpatient.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check patient email: %w", err)
		}
		if exists {
			return nil, ErrEmailTaken
		}
	}

	c := s.db.Patient.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.DateOfBirth != nil {
		c = c.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.MedicalNotes != nil {
		c = c.SetNillableMedicalNotes(req.MedicalNotes)
	}
	if req.ReferralSource != nil {
		c = c.SetNillableReferralSource(req.ReferralSource)
	}
	if req.UserID != nil {
		c = c.SetUserID(*req.UserID)
	}
	if req.TaxID != nil && *req.TaxID != "" {
		encrypted, err := s.encrypt(*req.TaxID)
		if err != nil {
			return nil, err
		}
		c = c.SetTaxIDEncrypted(encrypted)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil())

	if req.Status != nil {
		q = q.Where(entpatient.StatusEQ(entpatient.Status(*req.Status)))
	}
	if req.Search != "" {
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(req.Search),
			entpatient.LastNameContainsFold(req.Search),
			entpatient.EmailContainsFold(req.Search),
		))
	}

	if req.Order == "asc" {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := s.db.Patient.Query().
			Where(
				entpatient.EmailEQ(*req.Email),
				entpatient.IDNEQ(patientID),
				entpatient.DeletedAtIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check patient email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	u := s.db.Patient.UpdateOne(p)

	if req.FirstName != nil {
		u = u.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		u = u.SetLastName(*req.LastName)
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
	}
	if req.Phone != nil {
		u = u.SetNillablePhone(req.Phone)
	}
	if req.DateOfBirth != nil {
		u = u.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.Status != nil {
		u = u.SetStatus(entpatient.Status(*req.Status))
	}
	if req.MedicalNotes != nil {
		u = u.SetNillableMedicalNotes(req.MedicalNotes)
	}
	if req.ReferralSource != nil {
		u = u.SetNillableReferralSource(req.ReferralSource)
	}
	if req.UserID != nil {
		u = u.SetUserID(*req.UserID)
	}
	if req.TaxID != nil {
		if *req.TaxID == "" {
			u = u.ClearTaxIDEncrypted()
		} else {
			encrypted, err := s.encrypt(*req.TaxID)
			if err != nil {
				return nil, err
			}
			u = u.SetTaxIDEncrypted(encrypted)
		}
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes the record. Appointments and invoices keep their
// references for history.
func (s *patientService) Delete(ctx context.Context, patientID uuid.UUID) error {
	n, err := s.db.Patient.Update().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *patientService) TaxID(ctx context.Context, patientID uuid.UUID) (string, error) {
	p, err := s.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	if p.TaxIDEncrypted == nil || *p.TaxIDEncrypted == "" {
		return "", nil
	}
	if len(s.encKey) == 0 {
		return "", ErrNoEncryptionKey
	}

	plain, err := crypto.Decrypt(s.encKey, *p.TaxIDEncrypted)
	if err != nil {
		return "", fmt.Errorf("decrypt tax id: %w", err)
	}
	return plain, nil
}

func (s *patientService) encrypt(plain string) (string, error) {
	if len(s.encKey) == 0 {
		return "", ErrNoEncryptionKey
	}
	encrypted, err := crypto.Encrypt(s.encKey, plain)
	if err != nil {
		return "", fmt.Errorf("encrypt tax id: %w", err)
	}
	return encrypted, nil
}
