package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	accessdomain "github.com/chonx19/act-r/internal/accesscontrol/domain"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/user/domain"
	"github.com/chonx19/act-r/internal/user/password"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Repo   domain.Repository
	Access accessdomain.Service
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	repo   domain.Repository
	access accessdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("user.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		repo:   p.Repo,
		access: p.Access,
	}
}

func (s *Service) Login(ctx context.Context, username, plain, clientIP, userAgent string) (domain.User, error) {
	allowed, err := s.access.Allowed(ctx, clientIP)
	if err != nil {
		return domain.User{}, err
	}
	if !allowed {
		return domain.User{}, &accessdomain.NotWhitelistedError{IP: clientIP}
	}

	user, err := s.repo.FindByUsername(ctx, s.db, strings.TrimSpace(username))
	if err != nil {
		return domain.User{}, err
	}
	if user == nil || !password.Verify(user.PasswordHash, plain) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrAccountDisabled
	}

	now := s.clock.Now()
	user.LastLogin = &now
	if err := s.repo.Save(ctx, s.db, user); err != nil {
		return domain.User{}, err
	}

	if err := s.access.RecordSession(ctx, accessdomain.RecordSessionRequest{
		UserID:    user.ID.String(),
		UserName:  user.Username,
		IPAddress: clientIP,
		UserAgent: userAgent,
	}); err != nil {
		// A full session log must not lock anyone out.
		s.log.Warn("session record failed", zap.Error(err))
	}

	s.log.Info("login", zap.String("username", user.Username), zap.String("ip", clientIP))
	return *user, nil
}

func (s *Service) Save(ctx context.Context, req domain.SaveUserRequest) (domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return domain.User{}, domain.ErrInvalidUsername
	}
	if !req.Role.Valid() {
		return domain.User{}, domain.ErrInvalidRole
	}

	now := s.clock.Now()
	linkedID, _ := snowflake.ParseString(strings.TrimSpace(req.LinkedCustomerID))

	var user domain.User
	if strings.TrimSpace(req.ID) == "" {
		if req.Password == "" {
			return domain.User{}, domain.ErrPasswordRequired
		}
		existing, err := s.repo.FindByUsername(ctx, s.db, username)
		if err != nil {
			return domain.User{}, err
		}
		if existing != nil {
			return domain.User{}, domain.ErrUserExists
		}
		user = domain.User{
			ID:        s.genID.Generate(),
			CreatedAt: now,
		}
	} else {
		id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
		if err != nil || id == 0 {
			return domain.User{}, domain.ErrInvalidID
		}
		found, err := s.repo.FindByID(ctx, s.db, id)
		if err != nil {
			return domain.User{}, err
		}
		if found == nil {
			return domain.User{}, domain.ErrNotFound
		}
		user = *found
	}

	user.Username = username
	user.Name = strings.TrimSpace(req.Name)
	user.Role = req.Role
	user.IsActive = req.IsActive
	user.LinkedCustomerID = linkedID
	user.UpdatedAt = now

	// An empty password on update keeps the stored hash.
	if req.Password != "" {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return domain.User{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Save(ctx, s.db, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, s.db, parsed)
}
