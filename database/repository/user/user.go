// File: database/repository/user/user.go
package userRepo

import (
	"context"
	"errors"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// UserRepository is the read-only directory view of accounts. Registration,
// credentials and profile data are owned by the identity service.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetDoctor(ctx context.Context, id string) (*models.User, error)
	GetPatient(ctx context.Context, id string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoUserRepo) GetDoctor(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id, "role": models.RoleDoctor})
}

func (r *mongoUserRepo) GetPatient(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id, "role": models.RolePatient})
}

func (r *mongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
