package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migration creates one index. Index creation is idempotent in MongoDB, so
// every migration runs on every invocation.
type Migration struct {
	Name       string
	Collection string
	Index      mongo.IndexModel
}

// All is applied in order.
var All = []Migration{
	appointmentsByDoctorAndDate,
	reportsByDoctor,
	reportsByPatientName,
}

type Indexer interface {
	CreateIndex(ctx context.Context, collection string, model mongo.IndexModel) (string, error)
}

type mongoIndexer struct {
	db *mongo.Database
}

func (m mongoIndexer) CreateIndex(ctx context.Context, collection string, model mongo.IndexModel) (string, error) {
	return m.db.Collection(collection).Indexes().CreateOne(ctx, model)
}

func Run(ctx context.Context, db *mongo.Database) error {
	return Apply(ctx, mongoIndexer{db: db}, All)
}

// Apply stops at the first failing migration.
func Apply(ctx context.Context, idx Indexer, migrations []Migration) error {
	for _, m := range migrations {
		name, err := idx.CreateIndex(ctx, m.Collection, m.Index)
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Str("collection", m.Collection).Str("index", name).Msg("migration applied")
	}
	return nil
}
