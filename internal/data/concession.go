package data

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type concessionRepo struct {
	data *Data
	log  *log.Helper
}

// NewConcessionRepo creates a new concession repository
func NewConcessionRepo(data *Data, logger log.Logger) biz.ConcessionRepo {
	return &concessionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *concessionRepo) ListConcessions(ctx context.Context, category string) ([]*biz.Concession, error) {
	q := url.Values{}
	q.Set("category", category)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/concessions", WithQuery(q))
	if err != nil {
		return nil, normalizeError(err, "Unable to load concessions.")
	}
	return concessionsToBiz(decodeSlice[Concession](r.data, res, "/concessions")), nil
}

func (r *concessionRepo) ListByCinema(ctx context.Context, cinemaID string) ([]*biz.Concession, error) {
	path := "/concessions/by-cinema/" + url.PathEscape(cinemaID)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load concessions for this cinema.")
	}
	return concessionsToBiz(decodeSlice[Concession](r.data, res, path)), nil
}

func (r *concessionRepo) GetConcession(ctx context.Context, id string) (*biz.Concession, error) {
	path := "/concessions/" + url.PathEscape(id)
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, path)
	if err != nil {
		return nil, normalizeError(err, "Unable to load concession details.")
	}
	var c Concession
	if !r.data.decode(res, &c, path) {
		return nil, nil
	}
	return concessionToBiz(&c), nil
}
