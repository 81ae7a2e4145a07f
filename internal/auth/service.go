package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// bcryptCost is the work factor applied to stored credentials.
const bcryptCost = 12

// Service wraps authentication and profile business rules.
type Service struct {
	repo   Repository
	tokens *TokenManager
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates an account and issues a token for it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.ErrEmailTaken
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &User{
		ID:                uuid.NewString(),
		Email:             req.Email,
		Name:              req.Name,
		PasswordHash:      string(hash),
		Bio:               req.Bio,
		Location:          req.Location,
		RavelryUsername:   req.RavelryUsername,
		PreferredCrafts:   req.PreferredCrafts,
		SkillLevel:        req.SkillLevel,
		ProfileVisibility: req.ProfileVisibility,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if user.PreferredCrafts == "" {
		user.PreferredCrafts = CraftBoth
	}
	if user.SkillLevel == "" {
		user.SkillLevel = SkillBeginner
	}
	if user.ProfileVisibility == "" {
		user.ProfileVisibility = VisibilityPublic
	}

	// The unique constraint settles the race between the pre-check and the insert.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: user.Profile(), Token: token}, nil
}

// Login validates credentials and issues a fresh token. Unknown emails, empty
// stored hashes and wrong passwords all surface the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: user.Profile(), Token: token}, nil
}

// Profile fetches the profile for the given user id.
func (s *Service) Profile(ctx context.Context, id string) (Profile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return user.Profile(), nil
}

// UpdateProfile applies the provided fields and returns the merged profile.
func (s *Service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (Profile, error) {
	if req.Empty() {
		return s.Profile(ctx, id)
	}
	user, err := s.repo.UpdateProfile(ctx, id, ProfilePatch{
		Name:              req.Name,
		Bio:               req.Bio,
		Location:          req.Location,
		RavelryUsername:   req.RavelryUsername,
		PreferredCrafts:   req.PreferredCrafts,
		SkillLevel:        req.SkillLevel,
		ProfileVisibility: req.ProfileVisibility,
	})
	if err != nil {
		return Profile{}, err
	}
	return user.Profile(), nil
}

// Identify resolves a verified token subject to a request identity.
// A missing user maps to the unauthorized taxonomy; storage failures do not.
func (s *Service) Identify(ctx context.Context, userID string) (shared.Identity, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.Identity{}, shared.ErrTokenUserGone
		}
		return shared.Identity{}, err
	}
	return shared.Identity{ID: user.ID, Email: user.Email}, nil
}
