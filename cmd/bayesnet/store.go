package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/estimate/json"
	"github.com/pbanos/bayesnet/estimate/mongostore"
	"github.com/pbanos/bayesnet/estimate/redisstore"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

const (
	defaultRedisPrefix = "bayesnet:estimates"
	mongoDialTimeout   = 10 * time.Second
)

/*
redisOptions takes a redis://[:password@]host[:port][/prefix] URL and
returns the client options and key prefix it describes.
*/
func redisOptions(u *url.URL) (*redis.Options, string) {
	opts := &redis.Options{Addr: u.Host}
	if u.User != nil {
		if pw, ok := u.User.Password(); ok {
			opts.Password = pw
		} else {
			opts.Password = u.User.Username()
		}
	}
	prefix := strings.Trim(u.Path, "/")
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return opts, prefix
}

/*
openStore takes a context and a redis:// or mongodb:// URL and returns
an estimate.Store backed by the service at the URL.
*/
func openStore(ctx context.Context, location string, l logger) (estimate.Store, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parsing store URL %s: %v", location, err)
	}
	switch u.Scheme {
	case "redis":
		opts, prefix := redisOptions(u)
		l.Logf("Connecting to redis at %s to store estimates under %s...", opts.Addr, prefix)
		rc := redis.NewClient(opts)
		err = rc.Ping().Err()
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %v", opts.Addr, err)
		}
		return redisstore.New(rc, prefix, 0, json.New()), nil
	case "mongodb":
		l.Logf("Connecting to MongoDB at %s...", u.Host)
		session, err := mgo.DialWithTimeout(location, mongoDialTimeout)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB at %s: %v", u.Host, err)
		}
		store, err := mongostore.Open(ctx, session)
		if err != nil {
			session.Close()
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unsupported store %s: expected a redis:// or mongodb:// URL", location)
}
