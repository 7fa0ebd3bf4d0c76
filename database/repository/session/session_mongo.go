package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"antshop/models"
	"antshop/services/session"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "chat_sessions"

// MongoSessionRepo implements session.Store using MongoDB. Documents are keyed
// by the session id (_id).
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates the repository and its indexes.
func NewMongoSessionRepo(db *mongo.Database) (*MongoSessionRepo, error) {
	repo := &MongoSessionRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext bounds calls that arrive without a deadline.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes adds an index on updatedAt for expiry sweeps and reporting.
func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updatedAt", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var sess models.Session
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if sess.History == nil {
		sess.History = []models.Message{}
	}
	return &sess, nil
}

func (r *MongoSessionRepo) Save(ctx context.Context, sess *models.Session) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": sess.ID}, sess, opts); err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	return nil
}

func (r *MongoSessionRepo) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 2*time.Second)
	defer cancel()
	return r.coll.Database().Client().Ping(ctx, nil)
}

// DeleteIdle removes sessions untouched since cutoff.
func (r *MongoSessionRepo) DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle sessions: %w", err)
	}
	return res.DeletedCount, nil
}

// StartSweeper deletes idle sessions every interval until ctx is done.
// A non-positive ttl or interval disables expiry.
func (r *MongoSessionRepo) StartSweeper(ctx context.Context, ttl, interval time.Duration, logger *zap.Logger) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				n, err := r.DeleteIdle(ctx, now.Add(-ttl))
				if err != nil {
					logger.Warn("idle session sweep failed", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Debug("expired idle sessions", zap.Int64("count", n))
				}
			}
		}
	}()
}

var _ session.Store = (*MongoSessionRepo)(nil)
