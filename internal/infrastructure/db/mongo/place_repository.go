package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minusd/favorite-places/internal/core/domain"
)

const collectionPlaces = "favorite_places"

// PlaceRepository implements ports.PlaceRepository using MongoDB.
type PlaceRepository struct {
	col *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{col: db.Collection(collectionPlaces)}
}

type mongoPlace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Name        string             `bson:"place_name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ListByUser returns the user's places, oldest first.
func (r *PlaceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []mongoPlace
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	places := make([]*domain.Place, len(docs))
	for i, d := range docs {
		places[i] = d.toDomain()
	}
	return places, nil
}

// FindByID retrieves a place by its hex ObjectID. Malformed IDs are reported
// as not found.
func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d mongoPlace
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *PlaceRepository) Create(ctx context.Context, p *domain.Place) (*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoPlace{
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert place: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Update overwrites the editable fields of an existing place.
func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) (*domain.Place, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"place_name":  p.Name,
		"description": p.Description,
		"updated_at":  p.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPlaceNotFound
	}

	updated := *p
	return &updated, nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the favorite_places collection.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}

func (d mongoPlace) toDomain() *domain.Place {
	return &domain.Place{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}
