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

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

const collectionSchedules = "schedules"

type ScheduleRepository struct {
	col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{col: db.Collection(collectionSchedules)}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}
	return s, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Schedule
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	return &s, nil
}

func (r *ScheduleRepository) FindByProject(ctx context.Context, projectID string) ([]*domain.Schedule, error) {
	return r.find(ctx, bson.M{"project_id": projectID})
}

// FindOverlapping returns schedules whose inclusive date range intersects
// [from, to].
func (r *ScheduleRepository) FindOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Schedule, error) {
	return r.find(ctx, bson.M{
		"start_date": bson.M{"$lte": domain.DateOf(to)},
		"end_date":   bson.M{"$gte": domain.DateOf(from)},
	})
}

func (r *ScheduleRepository) FindAll(ctx context.Context) ([]*domain.Schedule, error) {
	return r.find(ctx, bson.M{})
}

func (r *ScheduleRepository) find(ctx context.Context, filter bson.M) ([]*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find schedules: %w", err)
	}
	defer cur.Close(ctx)

	var schedules []*domain.Schedule
	if err := cur.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("decode schedules: %w", err)
	}
	return schedules, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, s *domain.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// UpdateStatus persists only the status fields, leaving the rest of the
// document untouched. Used by the read-path re-derivation.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus, completedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": status}
	unset := bson.M{}
	if completedAt != nil {
		set["completed_at"] = *completedAt
	} else {
		unset["completed_at"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.col.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("update schedule status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) ExistsByProject(ctx context.Context, projectID string) (bool, error) {
	return r.exists(ctx, bson.M{"project_id": projectID})
}

func (r *ScheduleRepository) ExistsByField(ctx context.Context, fieldID string) (bool, error) {
	return r.exists(ctx, bson.M{"field_id": fieldID})
}

func (r *ScheduleRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count schedules: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the indexes backing project and range lookups.
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "start_date", Value: 1}}},
		{Keys: bson.D{{Key: "field_id", Value: 1}}},
		{Keys: bson.D{{Key: "start_date", Value: 1}, {Key: "end_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
