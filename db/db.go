package db

import (
	"context"
	"fmt"
	"time"

	"ruva/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store é o contrato do document store usado pelos controllers.
// Em teste usamos uma implementação em memória no lugar do Mongo.
type Store interface {
	// CreateDocument insere um registro na collection e devolve o id gerado.
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	// GetDocuments consulta por igualdade exata de campos, limitado a limit,
	// e decodifica os resultados em out (ponteiro para slice).
	GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// Mongo implementa Store sobre uma conexão MongoDB.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect abre a conexão com o Mongo e valida com um ping.
func Connect(ctx context.Context, cfg config.Configuration) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{
		client:   client,
		database: client.Database(cfg.DatabaseName),
	}, nil
}

// Close libera a conexão. Chamar no shutdown do processo.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	res, err := m.database.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (m *Mongo) GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error {
	// Sem sort explícito: a ordem natural (inserção) do Mongo é suficiente aqui.
	cursor, err := m.database.Collection(collection).Find(ctx, bson.M(filter), options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode from %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.database.ListCollectionNames(ctx, bson.M{})
}
