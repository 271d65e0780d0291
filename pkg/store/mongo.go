package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
	"github.com/shaderforge/shadegraph/pkg/graph"
)

// MongoStore is a MongoDB-backed store for shared deployments.
// Each graph is one document keyed by name, carrying the wire-format
// document via its bson tags.
type MongoStore struct {
	coll *mongo.Collection
}

// mongoDoc is the stored document shape.
type mongoDoc struct {
	Name      string         `bson:"_id"`
	Graph     graph.Document `bson:"graph"`
	UpdatedAt time.Time      `bson:"updated_at"`
}

// NewMongoStore creates a MongoDB-backed store on the given collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Save(ctx context.Context, name string, g *shader.Graph) error {
	doc := mongoDoc{
		Name:      name,
		Graph:     graph.FromGraph(g),
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, opts); err != nil {
		return fmt.Errorf("mongo replace %s: %w", name, err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, name string) (*shader.Graph, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", name, err)
	}
	return graph.ToGraph(doc.Graph)
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo decode: %w", err)
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fmt.Errorf("mongo delete %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close does nothing; the caller owns the client connection.
func (s *MongoStore) Close() error { return nil }

var _ Store = (*MongoStore)(nil)
