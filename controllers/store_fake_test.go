package controllers_test

import (
	"context"
	"errors"
	"reflect"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore implementa db.Store em memória para os testes de handler.
// Os documentos passam por um round-trip bson para reproduzir a
// serialização real do driver (tags, _id gerado, ponteiros omitidos).
type fakeStore struct {
	docs       map[string][]storedDoc
	failCreate bool
	failGet    bool
	failPing   bool
}

type storedDoc struct {
	raw    []byte
	fields bson.M
}

var errStoreOffline = errors.New("store offline")

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]storedDoc{}}
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if f.failCreate {
		return "", errStoreOffline
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return "", err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	fields["_id"] = oid
	raw, err = bson.Marshal(fields)
	if err != nil {
		return "", err
	}

	f.docs[collection] = append(f.docs[collection], storedDoc{raw: raw, fields: fields})
	return oid.Hex(), nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64, out any) error {
	if f.failGet {
		return errStoreOffline
	}

	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()

	var count int64
	for _, doc := range f.docs[collection] {
		if count >= limit {
			break
		}
		if !matchesFilter(doc.fields, filter) {
			continue
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(doc.raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
		count++
	}
	return nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	if f.failPing {
		return errStoreOffline
	}
	return nil
}

func (f *fakeStore) Collections(ctx context.Context) ([]string, error) {
	if f.failPing {
		return nil, errStoreOffline
	}
	names := make([]string, 0, len(f.docs))
	for name := range f.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeStore) count(collection string) int {
	return len(f.docs[collection])
}

func matchesFilter(fields bson.M, filter map[string]any) bool {
	for k, v := range filter {
		if fields[k] != v {
			return false
		}
	}
	return true
}
