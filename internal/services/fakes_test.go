package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oscahub/osca-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory fakes for the repository, blob store, and auth collaborators.

type fakeMemberRepo struct {
	members            map[primitive.ObjectID]*models.Member
	profileUpdates     int
	lastProfile        models.ProfileUpdate
	passwordUpdates    int
	lastPasswordHash   string
	photoURLs          map[primitive.ObjectID]string
	updateProfileError error
}

func newFakeMemberRepo(members ...*models.Member) *fakeMemberRepo {
	r := &fakeMemberRepo{
		members:   make(map[primitive.ObjectID]*models.Member),
		photoURLs: make(map[primitive.ObjectID]string),
	}
	for _, m := range members {
		r.members[m.ID] = m
	}
	return r
}

func (r *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	r.members[member.ID] = member
	return nil
}

func (r *fakeMemberRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return m, nil
}

func (r *fakeMemberRepo) FindByMemberNo(ctx context.Context, memberNo string) (*models.Member, error) {
	for _, m := range r.members {
		if m.MemberNo == memberNo {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeMemberRepo) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeMemberRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Member, error) {
	var out []*models.Member
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMemberRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.ProfileUpdate, updatedAt time.Time) error {
	if r.updateProfileError != nil {
		return r.updateProfileError
	}
	if _, ok := r.members[id]; !ok {
		return mongo.ErrNoDocuments
	}
	r.profileUpdates++
	r.lastProfile = profile
	return nil
}

func (r *fakeMemberRepo) UpdatePhotoURL(ctx context.Context, id primitive.ObjectID, photoURL string) error {
	r.photoURLs[id] = photoURL
	return nil
}

func (r *fakeMemberRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	if _, ok := r.members[id]; !ok {
		return mongo.ErrNoDocuments
	}
	r.passwordUpdates++
	r.lastPasswordHash = passwordHash
	return nil
}

func (r *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.members)), nil
}

type fakeBenefitRepo struct {
	benefits map[primitive.ObjectID]*models.Benefit
}

func newFakeBenefitRepo(benefits ...*models.Benefit) *fakeBenefitRepo {
	r := &fakeBenefitRepo{benefits: make(map[primitive.ObjectID]*models.Benefit)}
	for _, b := range benefits {
		r.benefits[b.ID] = b
	}
	return r
}

func (r *fakeBenefitRepo) Create(ctx context.Context, benefit *models.Benefit) error {
	if benefit.ID.IsZero() {
		benefit.ID = primitive.NewObjectID()
	}
	r.benefits[benefit.ID] = benefit
	return nil
}

func (r *fakeBenefitRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Benefit, error) {
	b, ok := r.benefits[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return b, nil
}

func (r *fakeBenefitRepo) FindAll(ctx context.Context) ([]*models.Benefit, error) {
	var out []*models.Benefit
	for _, b := range r.benefits {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBenefitRepo) Update(ctx context.Context, benefit *models.Benefit) error {
	r.benefits[benefit.ID] = benefit
	return nil
}

func (r *fakeBenefitRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.benefits, id)
	return nil
}

func (r *fakeBenefitRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.benefits)), nil
}

type fakeAvailmentRepo struct {
	availments []*models.Availment
	creates    int
}

func (r *fakeAvailmentRepo) Create(ctx context.Context, availment *models.Availment) error {
	r.creates++
	if availment.ID.IsZero() {
		availment.ID = primitive.NewObjectID()
	}
	r.availments = append(r.availments, availment)
	return nil
}

func (r *fakeAvailmentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Availment, error) {
	for _, a := range r.availments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAvailmentRepo) FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]*models.Availment, error) {
	var out []*models.Availment
	for _, a := range r.availments {
		if a.MemberID == memberID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAvailmentRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Availment, error) {
	return r.availments, nil
}

func (r *fakeAvailmentRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, rejectReason string, approvedAt *time.Time) error {
	for _, a := range r.availments {
		if a.ID == id {
			a.Status = status
			if rejectReason != "" {
				a.RejectReason = rejectReason
			}
			if approvedAt != nil {
				a.ApprovedAt = approvedAt
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeAvailmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.availments)), nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.payments {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindAll(ctx context.Context, page, limit int) ([]*models.Payment, error) {
	return r.payments, nil
}

func (r *fakePaymentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.payments)), nil
}

// fakeBlobStore records uploads in order and can be told to fail from the
// nth upload onwards.
type fakeBlobStore struct {
	keys      []string
	types     []string
	failAfter int // fail uploads once len(keys) reaches this; 0 means never
}

func (s *fakeBlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.failAfter > 0 && len(s.keys) >= s.failAfter {
		return "", errors.New("storage unavailable")
	}
	io.Copy(io.Discard, body)
	s.keys = append(s.keys, key)
	s.types = append(s.types, contentType)
	return "https://blobs.test/" + key, nil
}

// fakeAuth records re-authentication and credential updates.
type fakeAuth struct {
	reauthCalls    int
	reauthPassword string
	reauthErr      error
	updateCalls    int
	updatedTo      string
	updateErr      error
}

func (a *fakeAuth) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (a *fakeAuth) Reauthenticate(ctx context.Context, session *models.Session, currentPassword string) error {
	a.reauthCalls++
	a.reauthPassword = currentPassword
	return a.reauthErr
}

func (a *fakeAuth) UpdatePassword(ctx context.Context, memberID primitive.ObjectID, newPassword string) error {
	a.updateCalls++
	a.updatedTo = newPassword
	return a.updateErr
}
