// Package mongostore guarda el documento de movimientos en una colección MongoDB,
// un documento por clave: {_id: <clave>, movements: [...], updatedAt}.
package mongostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/jhoicas/kardex-textil/internal/domain/repository"
	"github.com/jhoicas/kardex-textil/pkg/config"
)

var (
	_ repository.MovementStore  = (*Store)(nil)
	_ repository.SnapshotWriter = (*Store)(nil)
)

// document forma guardada. Movements se guarda como el mismo JSON del resto de drivers
// para que el formato persistido sea idéntico entre backends.
type document struct {
	Key       string    `bson:"_id"`
	Movements string    `bson:"movements"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store implementación sobre MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	key    string
}

// Connect abre la conexión y verifica con Ping.
func Connect(ctx context.Context, cfg config.MongoConfig, key string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &Store{
		client: client,
		coll:   client.Database(cfg.DBName).Collection(cfg.Collection),
		key:    key,
	}, nil
}

// Load obtiene el documento; si no existe devuelve una lista vacía.
func (s *Store) Load(ctx context.Context) ([]entity.Movement, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []entity.Movement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer documento %q: %w", s.key, err)
	}
	movements := []entity.Movement{}
	if err := json.Unmarshal([]byte(doc.Movements), &movements); err != nil {
		return nil, fmt.Errorf("decodificar documento %q: %w", s.key, err)
	}
	return movements, nil
}

// Save reemplaza el documento completo (ReplaceOne con upsert).
func (s *Store) Save(ctx context.Context, movements []entity.Movement) error {
	return s.SaveSnapshot(ctx, s.key, movements)
}

// SaveSnapshot escribe el documento bajo otra clave.
func (s *Store) SaveSnapshot(ctx context.Context, key string, movements []entity.Movement) error {
	if movements == nil {
		movements = []entity.Movement{}
	}
	b, err := json.Marshal(movements)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	doc := document{Key: key, Movements: string(b), UpdatedAt: time.Now().UTC()}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("guardar documento %q: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
