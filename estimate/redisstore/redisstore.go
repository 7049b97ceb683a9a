/*
Package redisstore provides an implementation of estimate.Store
backed by a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/estimate/json"
	redis "gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
	encdec json.EncodeDecoder
}

/*
New takes a redis client, a key prefix, a TTL and an EncodeDecoder
and returns an estimate.Store that keeps every estimate under the key
prefix:id, encoded with the EncodeDecoder. Estimates expire after the
given TTL unless it is 0.
*/
func New(rc *redis.Client, prefix string, ttl time.Duration, encdec json.EncodeDecoder) estimate.Store {
	return &redisStore{rc, prefix, ttl, encdec}
}

func (rs *redisStore) Create(ctx context.Context, e *estimate.Estimate) error {
	var ok bool
	for !ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.ID = estimate.NewID()
		data, err := rs.encdec.Encode(e)
		if err != nil {
			return fmt.Errorf("creating estimate: encoding estimate: %v", err)
		}
		ok, err = rs.rc.SetNX(rs.keyFor(e.ID), data, rs.ttl).Result()
		if err != nil {
			return fmt.Errorf("creating estimate in redis: %v", err)
		}
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, id string) (*estimate.Estimate, error) {
	data, err := rs.rc.Get(rs.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving estimate %q: %v", id, err)
	}
	e, err := rs.encdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving estimate %q: %v", id, err)
	}
	return e, nil
}

func (rs *redisStore) Delete(ctx context.Context, id string) error {
	_, err := rs.rc.Del(rs.keyFor(id)).Result()
	if err != nil {
		return fmt.Errorf("deleting estimate %q from redis: %v", id, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
