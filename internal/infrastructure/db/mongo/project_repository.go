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
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

// FindByIDs returns the projects for the given ids, keyed by id. Missing ids
// are simply absent from the map.
func (r *ProjectRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Project, error) {
	if len(ids) == 0 {
		return map[string]*domain.Project{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ProjectListFilter) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ViewerID != "" {
		query["$or"] = bson.A{
			bson.M{"created_by_id": filter.ViewerID},
			bson.M{"assigned_to.id": filter.ViewerID},
		}
	}
	if filter.AssignedToID != "" {
		query["assigned_to.id"] = filter.AssignedToID
	}
	if filter.Completed != nil {
		query["is_completed"] = *filter.Completed
	}

	opts := options.Find().SetSort(sortSpec(filter.SortBy))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

// sortSpec maps the public sort keys onto document fields. Name is both the
// default and the tiebreaker for every other key.
func sortSpec(key string) bson.D {
	switch key {
	case ports.SortByManufacturingNumber:
		return bson.D{{Key: "manufacturing_number", Value: 1}, {Key: "name", Value: 1}}
	case ports.SortByDueDate:
		return bson.D{{Key: "due_date", Value: 1}, {Key: "name", Value: 1}}
	case ports.SortByCreatedAt:
		return bson.D{{Key: "created_at", Value: -1}, {Key: "name", Value: 1}}
	case ports.SortByCompletedAt:
		return bson.D{{Key: "completed_at", Value: -1}, {Key: "name", Value: 1}}
	case ports.SortByAssignee:
		return bson.D{
			{Key: "assigned_to.last_name", Value: 1},
			{Key: "assigned_to.first_name", Value: 1},
			{Key: "assigned_to.username", Value: 1},
			{Key: "name", Value: 1},
		}
	default:
		return bson.D{{Key: "name", Value: 1}}
	}
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list filters and sorts.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by_id", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_to.id", Value: 1}}},
		{Keys: bson.D{{Key: "is_completed", Value: 1}, {Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
