package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travel-journal/journal-api/internal/core/domain"
)

const collectionEntries = "entries"

type EntryRepository struct {
	col *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{col: db.Collection(collectionEntries)}
}

// Create inserts a new entry document.
func (r *EntryRepository) Create(ctx context.Context, e *domain.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id string) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Entry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return &e, nil
}

// FindByAuthor returns the author's entries sorted by creation time, then id.
func (r *EntryRepository) FindByAuthor(ctx context.Context, authorID string) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"author": authorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	entries := make([]*domain.Entry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

// UpdateText sets headline, journal text and updated_at. Location, coordinates
// and author are never part of the update document.
func (r *EntryRepository) UpdateText(ctx context.Context, e *domain.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"headline":     e.Headline,
		"journal_text": e.JournalText,
		"updated_at":   e.UpdatedAt.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": e.ID}, update)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the entries collection.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
