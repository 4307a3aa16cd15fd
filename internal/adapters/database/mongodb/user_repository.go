package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SscSPs/user_account_app/internal/apperrors"
	"github.com/SscSPs/user_account_app/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_app/internal/core/ports/repositories"
	"github.com/SscSPs/user_account_app/internal/models"
)

const usersCollection = "users"

// MongoUserRepository is the credential store adapter over the users collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a user repository bound to the users collection.
func NewUserRepository(db *mongo.Database) portsrepo.UserRepositoryFacade {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

// Ensure MongoUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*MongoUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		MobileNumber: d.MobileNumber,
		PasswordHash: d.PasswordHash,
		RefreshToken: d.RefreshToken,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		MobileNumber: m.MobileNumber,
		PasswordHash: m.PasswordHash,
		RefreshToken: m.RefreshToken,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SaveUser inserts a new user document. Unique indexes on username, email and
// mobileNumber decide races: the losing insert comes back as a duplicate-key
// error and is surfaced as apperrors.ErrDuplicate. There is no pre-check.
func (r *MongoUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	_, err := r.coll.InsertOne(ctx, toModelUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var modelUser models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&modelUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserIdentityByID loads a user with the password hash and refresh token
// excluded by a query projection, so credentials never leave the store for
// middleware lookups.
func (r *MongoUserRepository) FindUserIdentityByID(ctx context.Context, userID string) (*domain.User, error) {
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "password", Value: 0},
		{Key: "refreshToken", Value: 0},
	})

	var modelUser models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&modelUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user identity by ID %s: %w", userID, err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByLogin matches a user on username or email, whichever is set.
func (r *MongoUserRepository) FindUserByLogin(ctx context.Context, username, email string) (*domain.User, error) {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil, apperrors.ErrValidation
	}

	var modelUser models.User
	err := r.coll.FindOne(ctx, bson.M{"$or": or}).Decode(&modelUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	update := bson.M{"$set": bson.M{
		"fullName":     user.FullName,
		"email":        user.Email,
		"mobileNumber": user.MobileNumber,
		"updatedAt":    user.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, user.UserID, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	res, err := r.coll.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken writes only the refreshToken field; the rest of the
// document is left untouched.
func (r *MongoUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	res, err := r.coll.UpdateByID(ctx, userID, bson.M{"$set": bson.M{"refreshToken": refreshToken}})
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	res, err := r.coll.UpdateByID(ctx, userID, bson.M{"$unset": bson.M{"refreshToken": ""}})
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
