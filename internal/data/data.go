package data

import (
	"context"
	"reflect"
	"strings"
	"time"

	"storefront/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewGateway,
	NewData,
	NewMovieRepo,
	NewCinemaRepo,
	NewShowtimeRepo,
	NewSeatRepo,
	NewBookingRepo,
	NewPaymentRepo,
	NewConcessionRepo,
	NewHealthRepo,
)

// Data bundles the cinema API client with the optional catalog cache
type Data struct {
	gw       *Gateway
	rdb      *redis.Client
	cacheTTL time.Duration
	loc      *time.Location
	validate *validator.Validate
	log      *log.Helper
}

// NewData creates Data instance with the gateway and an optional Redis connection
func NewData(c *conf.Data, sf *conf.Storefront, gw *Gateway, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)

	loc := time.Local
	if sf != nil && sf.TimeZone != "" {
		if zone, err := time.LoadLocation(sf.TimeZone); err != nil {
			l.Warnf("unknown time zone %q, using local time: %v", sf.TimeZone, err)
		} else {
			loc = zone
		}
	}

	var (
		rdb *redis.Client
		ttl = defaultCacheTTL
	)
	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		if d := c.Redis.CacheTtl.AsDuration(); d > 0 {
			ttl = d
		}
		rdb = redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			Password:     c.Redis.Password,
			DB:           int(c.Redis.Db),
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			l.Warnf("failed to connect to redis: %v", err)
			// Redis is optional, continue without it
			_ = rdb.Close()
			rdb = nil
		} else {
			l.Info("redis connected successfully")
		}
	}

	d := newData(gw, rdb, ttl, loc, logger)

	cleanup := func() {
		l.Info("closing data resources")
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				l.Errorf("failed to close redis: %v", err)
			}
		}
	}

	return d, cleanup, nil
}

func newData(gw *Gateway, rdb *redis.Client, ttl time.Duration, loc *time.Location, logger log.Logger) *Data {
	if loc == nil {
		loc = time.UTC
	}
	return &Data{
		gw:       gw,
		rdb:      rdb,
		cacheTTL: ttl,
		loc:      loc,
		validate: newValidator(),
		log:      log.NewHelper(logger),
	}
}

// decodePage reads a paginated payload. Unexpected shapes are logged and yield an empty page.
func decodePage[T any](d *Data, res Result, path string) Page[T] {
	var page Page[T]
	if err := res.Decode(&page); err != nil {
		d.log.Warnf("unexpected page from %s (%s): %v", path, res.Kind, err)
		return Page[T]{}
	}
	return page
}

// decodeSlice reads a JSON array payload. Unexpected shapes are logged and yield nil.
func decodeSlice[T any](d *Data, res Result, path string) []T {
	var list []T
	if err := res.Decode(&list); err != nil {
		d.log.Warnf("unexpected list from %s (%s): %v", path, res.Kind, err)
		return nil
	}
	return list
}

// decodeContent accepts either a page or a bare array.
func decodeContent[T any](d *Data, res Result, path string) []T {
	var list []T
	if err := res.Decode(&list); err == nil {
		return list
	}
	return decodePage[T](d, res, path).Content
}

func (d *Data) decode(res Result, v interface{}, path string) bool {
	if res.IsEmpty() {
		return false
	}
	if err := res.Decode(v); err != nil {
		d.log.Warnf("unexpected payload from %s (%s): %v", path, res.Kind, err)
		return false
	}
	return true
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
