// Package legacy imports content from the MongoDB database the site used
// before the move to SQL. Document ids are kept, so running it twice
// overwrites instead of duplicating.
package legacy

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 200

// Report counts imported documents per collection.
type Report map[string]int

// Connect dials MongoDB and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

type Importer struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewImporter(db *gorm.DB, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{db: db, log: log}
}

// Run imports every known collection of src. It stops at the first failure;
// collections imported before it stay imported.
func (im *Importer) Run(ctx context.Context, src *mongo.Database) (Report, error) {
	report := Report{}
	steps := []struct {
		name string
		run  func(context.Context, *mongo.Collection) (int, error)
	}{
		{"profiles", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapProfile) }},
		{"abouts", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapAbout) }},
		{"skills", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapSkill) }},
		{"certificates", func(ctx context.Context, c *mongo.Collection) (int, error) {
			return copyAll(ctx, im.db, c, mapCertificate)
		}},
		{"projects", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapProject) }},
		{"contacts", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapContact) }},
		{"resumes", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapResume) }},
		{"messages", func(ctx context.Context, c *mongo.Collection) (int, error) { return copyAll(ctx, im.db, c, mapMessage) }},
		{"credentials", func(ctx context.Context, c *mongo.Collection) (int, error) {
			return copyAll(ctx, im.db, c, mapCredentials)
		}},
	}
	for _, step := range steps {
		n, err := step.run(ctx, src.Collection(step.name))
		if err != nil {
			return report, fmt.Errorf("import %s: %w", step.name, err)
		}
		report[step.name] = n
		im.log.Info("collection imported", zap.String("collection", step.name), zap.Int("documents", n))
	}
	return report, nil
}

func copyAll[D any, M any](ctx context.Context, db *gorm.DB, coll *mongo.Collection, mapFn func(D) M) (int, error) {
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	total := 0
	batch := make([]M, 0, batchSize)
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return total, err
		}
		batch = append(batch, mapFn(doc))
		if len(batch) == batchSize {
			if err := upsert(ctx, db, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return total, err
	}
	if len(batch) > 0 {
		if err := upsert(ctx, db, batch); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}

// upsert inserts rows, overwriting any with the same id from the incoming
// values. Every non-key column is assigned explicitly so updated_at keeps the
// imported value instead of being stamped with the current time.
func upsert[M any](ctx context.Context, db *gorm.DB, rows []M) error {
	cols, err := assignable(db, new(M))
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&rows).Error
}

// assignable lists the columns of model other than its primary key.
func assignable(db *gorm.DB, model interface{}) ([]string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, err
	}
	cols := make([]string, 0, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		if f := stmt.Schema.LookUpField(name); f != nil && f.PrimaryKey {
			continue
		}
		cols = append(cols, name)
	}
	return cols, nil
}
