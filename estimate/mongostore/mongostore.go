/*
Package mongostore provides an implementation of estimate.Store
that uses a MongoDB database as backend.
*/
package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/weighted"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	estimatesCollectionName = "estimates"
)

type entry struct {
	Assignment  string  `bson:"assignment"`
	Probability float64 `bson:"probability"`
}

type document struct {
	ID               string          `bson:"_id"`
	Algorithm        string          `bson:"algorithm"`
	Variables        []string        `bson:"variables"`
	Evidence         map[string]bool `bson:"evidence,omitempty"`
	Distribution     []entry         `bson:"distribution"`
	Samples          int             `bson:"samples"`
	Accepted         int             `bson:"accepted"`
	EffectiveSamples float64         `bson:"effectiveSamples"`
	CreatedAt        time.Time       `bson:"createdAt"`
}

type mongoStore struct {
	session *mgo.Session
}

/*
Open takes a MongoDB database session and returns an estimate.Store
that keeps estimates on the default database for that session or an
error if the estimates collection cannot be indexed.
*/
func Open(ctx context.Context, session *mgo.Session) (estimate.Store, error) {
	ms := &mongoStore{session}
	err := ms.collection().EnsureIndex(mgo.Index{
		Key:        []string{"createdAt"},
		Background: true,
	})
	if err != nil {
		return nil, fmt.Errorf("indexing %s collection: %v", estimatesCollectionName, err)
	}
	return ms, nil
}

func (ms *mongoStore) Create(ctx context.Context, e *estimate.Estimate) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.ID = estimate.NewID()
		err := ms.collection().Insert(toDocument(e))
		if mgo.IsDup(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("creating estimate in mongo: %v", err)
		}
		return nil
	}
}

func (ms *mongoStore) Get(ctx context.Context, id string) (*estimate.Estimate, error) {
	doc := &document{}
	err := ms.collection().Find(bson.M{"_id": id}).One(doc)
	if err == mgo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving estimate %q: %v", id, err)
	}
	return fromDocument(doc)
}

func (ms *mongoStore) Delete(ctx context.Context, id string) error {
	err := ms.collection().RemoveId(id)
	if err != nil && err != mgo.ErrNotFound {
		return fmt.Errorf("deleting estimate %q from mongo: %v", id, err)
	}
	return nil
}

func (ms *mongoStore) Close(ctx context.Context) error {
	ms.session.Close()
	return nil
}

func (ms *mongoStore) collection() *mgo.Collection {
	return ms.session.DB("").C(estimatesCollectionName)
}

func toDocument(e *estimate.Estimate) *document {
	doc := &document{
		ID:               e.ID,
		Algorithm:        e.Algorithm,
		Variables:        e.Variables,
		Evidence:         e.Evidence,
		Distribution:     make([]entry, 0, e.Distribution.Len()),
		Samples:          e.Samples,
		Accepted:         e.Accepted,
		EffectiveSamples: e.EffectiveSamples,
		CreatedAt:        e.CreatedAt,
	}
	e.Distribution.Each(func(k bitvector.BitVector, p float64) {
		doc.Distribution = append(doc.Distribution, entry{k.String(), p})
	})
	return doc
}

func fromDocument(doc *document) (*estimate.Estimate, error) {
	d := weighted.New()
	for _, en := range doc.Distribution {
		k, err := bitvector.Parse(en.Assignment)
		if err != nil {
			return nil, fmt.Errorf("decoding estimate %q: %v", doc.ID, err)
		}
		d.Increment(k, en.Probability)
	}
	evidence := doc.Evidence
	if evidence == nil {
		evidence = map[string]bool{}
	}
	return &estimate.Estimate{
		ID:               doc.ID,
		Algorithm:        doc.Algorithm,
		Variables:        doc.Variables,
		Evidence:         evidence,
		Distribution:     d,
		Samples:          doc.Samples,
		Accepted:         doc.Accepted,
		EffectiveSamples: doc.EffectiveSamples,
		CreatedAt:        doc.CreatedAt,
	}, nil
}
