package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inventory-service/internal/domain"
	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{collection: store.Users()}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	doc := userDocument{
		Id:        userEntity.Id.String(),
		Name:      userEntity.Name,
		Email:     userEntity.Email,
		Password:  userEntity.Password,
		CreatedAt: userEntity.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return r.mapToEntity(&doc)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&doc)
}

func (r *UserRepository) mapToEntity(doc *userDocument) (*entities.User, error) {
	id, err := uuid.Parse(doc.Id)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		Id:        id,
		Name:      doc.Name,
		Email:     doc.Email,
		Password:  doc.Password,
		CreatedAt: doc.CreatedAt,
	}, nil
}
