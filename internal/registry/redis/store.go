package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tinkergames/tinkerdeck/internal/model"
	"github.com/tinkergames/tinkerdeck/internal/registry"
)

// Store is a Redis-backed implementation of the registry store. It lets a
// fleet of engine processes share one authored catalog; definitions are
// written by whichever process loads the catalog files and read by the rest.
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis registry store
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis registry store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ registry.Store = (*Store)(nil)

// Card definition operations

func (s *Store) SaveCardDefinition(ctx context.Context, def *model.CardDefinition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, cardDefKey(def.ID), data, 0)
	pipe.SAdd(ctx, cardIndexKey(), string(def.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) GetCardDefinition(ctx context.Context, id model.CardID) (*model.CardDefinition, error) {
	data, err := s.client.Get(ctx, cardDefKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrCardDefNotFound
	}
	if err != nil {
		return nil, err
	}

	var def model.CardDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *Store) ListCardDefinitions(ctx context.Context) ([]*model.CardDefinition, error) {
	ids, err := s.client.SMembers(ctx, cardIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	defs := make([]*model.CardDefinition, 0, len(ids))
	for _, id := range ids {
		def, err := s.GetCardDefinition(ctx, model.CardID(id))
		if errors.Is(err, model.ErrCardDefNotFound) {
			// Index entry without a body; skip rather than fail the listing
			continue
		}
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Sticker definition operations

func (s *Store) SaveStickerDefinition(ctx context.Context, def *model.StickerDefinition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, stickerDefKey(def.ID), data, 0)
	pipe.SAdd(ctx, stickerIndexKey(), string(def.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) GetStickerDefinition(ctx context.Context, id model.StickerID) (*model.StickerDefinition, error) {
	data, err := s.client.Get(ctx, stickerDefKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrStickerDefNotFound
	}
	if err != nil {
		return nil, err
	}

	var def model.StickerDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *Store) ListStickerDefinitions(ctx context.Context) ([]*model.StickerDefinition, error) {
	ids, err := s.client.SMembers(ctx, stickerIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	defs := make([]*model.StickerDefinition, 0, len(ids))
	for _, id := range ids {
		def, err := s.GetStickerDefinition(ctx, model.StickerID(id))
		if errors.Is(err, model.ErrStickerDefNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
