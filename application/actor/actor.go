package actor

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/constant"
	"github.com/muhammadheryan/medsupply/model"
	masterrepo "github.com/muhammadheryan/medsupply/repository/master"
	redisrepo "github.com/muhammadheryan/medsupply/repository/redis"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

// ActorApp turns a bearer token into the caller identity. Tokens are minted by
// the external auth service; IssueToken exists for local tooling and tests.
type ActorApp interface {
	ValidateToken(ctx context.Context, tokenString string) (*model.Actor, error)
	IssueToken(actor model.Actor) (string, error)
}

type actorClaims struct {
	Role constant.ActorRole `json:"role"`
	jwt.RegisteredClaims
}

type actorAppImpl struct {
	config     *config.Config
	masterRepo masterrepo.MasterRepository
	redisRepo  redisrepo.Repository
}

func NewActorApp(config *config.Config, masterRepo masterrepo.MasterRepository, redisRepo redisrepo.Repository) ActorApp {
	return &actorAppImpl{
		config:     config,
		masterRepo: masterRepo,
		redisRepo:  redisRepo,
	}
}

func (s *actorAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &actorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("invalid actor id in token")
	}
	if claims.Role != constant.RoleInstitute && claims.Role != constant.RoleManufacturer {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	actor := &model.Actor{ID: id, Role: claims.Role}
	if err := s.resolve(ctx, *actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// resolve checks that the subject names a real institute or manufacturer.
// Positive answers are cached for ActorTTL.
func (s *actorAppImpl) resolve(ctx context.Context, actor model.Actor) error {
	key := constant.ActorCacheKey(actor.Role, actor.ID)
	if s.redisRepo != nil {
		_, err := s.redisRepo.Get(ctx, key)
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, redisrepo.ErrCacheMiss) {
			logger.Warn("[ValidateToken] actor cache read", zap.String("key", key), zap.String("error", err.Error()))
		}
	}

	var found bool
	switch actor.Role {
	case constant.RoleInstitute:
		institute, err := s.masterRepo.GetInstitute(ctx, actor.ID)
		if err != nil {
			logger.Error("[ValidateToken] err masterRepo.GetInstitute", zap.String("error", err.Error()))
			return fmt.Errorf("resolve institute: %w", err)
		}
		found = institute != nil
	case constant.RoleManufacturer:
		manufacturer, err := s.masterRepo.GetManufacturer(ctx, actor.ID)
		if err != nil {
			logger.Error("[ValidateToken] err masterRepo.GetManufacturer", zap.String("error", err.Error()))
			return fmt.Errorf("resolve manufacturer: %w", err)
		}
		found = manufacturer != nil
	}
	if !found {
		return fmt.Errorf("%s %d does not exist", actor.Role, actor.ID)
	}

	if s.redisRepo != nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, "1", s.config.Cache.ActorTTL); err != nil {
			logger.Warn("[ValidateToken] actor cache write", zap.String("key", key), zap.String("error", err.Error()))
		}
	}
	return nil
}

func (s *actorAppImpl) IssueToken(actor model.Actor) (string, error) {
	now := time.Now()
	claims := actorClaims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(actor.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
