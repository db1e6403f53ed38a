package biz

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"storefront/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

const defaultScheduleDays = 5

// ErrViewNotLoaded is returned when a selection is made before Load succeeded.
var ErrViewNotLoaded = errors.New("movie detail view not loaded")

// ViewStatus is the lifecycle of a MovieDetailView
type ViewStatus int

const (
	ViewLoading ViewStatus = iota
	ViewReady
	ViewNotFound
)

func (s ViewStatus) String() string {
	switch s {
	case ViewLoading:
		return "loading"
	case ViewReady:
		return "ready"
	case ViewNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// MovieDetailHints are the navigation hints carried by the movie detail link.
type MovieDetailHints struct {
	City   string
	Cinema string
	Date   string
}

// MovieDetailState is a snapshot of the movie detail view.
type MovieDetailState struct {
	Status           ViewStatus
	Movie            *Movie
	Cities           []string
	TheatersInCity   []*Cinema
	Showtimes        []*Showtime
	SelectedCity     string
	SelectedCinema   string
	SelectedDate     string
	Loading          bool
	LoadingShowtimes bool
	Dates            []string
}

// CinemaShowtimes is the showtimes of one cinema, ordered by start time.
type CinemaShowtimes struct {
	CinemaID      string
	CinemaName    string
	CinemaAddress string
	Showtimes     []*Showtime
}

// MovieDetailUseCase builds movie detail views
type MovieDetailUseCase struct {
	movies    MovieRepo
	cinemas   CinemaRepo
	showtimes ShowtimeRepo
	days      int
	loc       *time.Location
	now       func() time.Time
	log       *log.Helper
}

// NewMovieDetailUseCase creates a new MovieDetailUseCase instance
func NewMovieDetailUseCase(movies MovieRepo, cinemas CinemaRepo, showtimes ShowtimeRepo, c *conf.Storefront, logger log.Logger) *MovieDetailUseCase {
	uc := &MovieDetailUseCase{
		movies:    movies,
		cinemas:   cinemas,
		showtimes: showtimes,
		days:      defaultScheduleDays,
		loc:       time.Local,
		now:       time.Now,
		log:       log.NewHelper(logger),
	}
	if c != nil {
		if c.ScheduleDays > 0 {
			uc.days = int(c.ScheduleDays)
		}
		if c.TimeZone != "" {
			loc, err := time.LoadLocation(c.TimeZone)
			if err != nil {
				uc.log.Warnf("unknown time zone %q, using local time: %v", c.TimeZone, err)
			} else {
				uc.loc = loc
			}
		}
	}
	return uc
}

// Open creates an unloaded view of one movie.
func (uc *MovieDetailUseCase) Open(movieID string, hints MovieDetailHints) *MovieDetailView {
	return &MovieDetailView{
		uc:      uc,
		movieID: movieID,
		hints:   hints,
		state:   MovieDetailState{Status: ViewLoading},
	}
}

// View opens and loads a view in one step.
func (uc *MovieDetailUseCase) View(ctx context.Context, movieID string, hints MovieDetailHints) (*MovieDetailView, error) {
	v := uc.Open(movieID, hints)
	if err := v.Load(ctx); err != nil {
		return v, err
	}
	return v, nil
}

// MovieDetailView holds the staged loading state of one movie's showtime browser.
//
// Load runs the first stage (movie and cities); selecting a city re-runs the
// theater stage; any change of city, cinema or date re-runs the showtime stage.
// Responses of a stage that has been superseded by a newer run are discarded.
type MovieDetailView struct {
	uc      *MovieDetailUseCase
	movieID string
	hints   MovieDetailHints

	mu          sync.Mutex
	state       MovieDetailState
	theaterSeq  uint64
	showtimeSeq uint64
}

// MovieID returns the movie the view was opened for.
func (v *MovieDetailView) MovieID() string {
	return v.movieID
}

// Load fetches the movie and the cities concurrently, seeds the selections and
// then loads theaters and showtimes. A failure of either fetch, or a missing
// movie, leaves the view in ViewNotFound and returns ErrMovieNotFound.
func (v *MovieDetailView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.state = MovieDetailState{Status: ViewLoading, Loading: true}
	v.theaterSeq++
	v.showtimeSeq++
	v.mu.Unlock()

	var (
		movie  *Movie
		cities []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := v.uc.movies.GetMovie(gctx, v.movieID)
		if err != nil {
			return err
		}
		movie = m
		return nil
	})
	g.Go(func() error {
		c, err := v.uc.cinemas.ListCities(gctx)
		if err != nil {
			return err
		}
		cities = c
		return nil
	})

	if err := g.Wait(); err != nil {
		v.uc.log.Errorf("failed to load movie %s: %v", v.movieID, err)
		v.markNotFound()
		return fmt.Errorf("%w: %v", ErrMovieNotFound, err)
	}
	if movie == nil {
		v.markNotFound()
		return fmt.Errorf("%w: %s", ErrMovieNotFound, v.movieID)
	}
	if cities == nil {
		cities = []string{}
	}

	dates := NextDays(v.uc.now(), v.uc.days, v.uc.loc)

	v.mu.Lock()
	v.state.Status = ViewReady
	v.state.Loading = false
	v.state.Movie = movie
	v.state.Cities = cities
	v.state.Dates = dates
	v.state.SelectedDate = initialDate(dates, v.hints.Date)
	v.state.SelectedCity = initialCity(cities, v.hints.City)
	v.state.SelectedCinema = v.hints.Cinema
	city := v.state.SelectedCity
	v.mu.Unlock()

	v.loadTheaters(ctx, city)
	v.loadShowtimes(ctx)
	return nil
}

// SelectCity switches the city and reloads theaters and showtimes.
func (v *MovieDetailView) SelectCity(ctx context.Context, city string) error {
	v.mu.Lock()
	if err := v.readyLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	if v.state.SelectedCity == city {
		v.mu.Unlock()
		return nil
	}
	v.state.SelectedCity = city
	v.mu.Unlock()

	v.loadTheaters(ctx, city)
	v.loadShowtimes(ctx)
	return nil
}

// SelectCinema narrows showtimes to one cinema. An empty id shows every cinema of the city.
func (v *MovieDetailView) SelectCinema(ctx context.Context, cinemaID string) error {
	v.mu.Lock()
	if err := v.readyLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	if v.state.SelectedCinema == cinemaID {
		v.mu.Unlock()
		return nil
	}
	v.state.SelectedCinema = cinemaID
	v.mu.Unlock()

	v.loadShowtimes(ctx)
	return nil
}

// SelectDate switches the screening day.
func (v *MovieDetailView) SelectDate(ctx context.Context, date string) error {
	date = NormalizeDate(date)

	v.mu.Lock()
	if err := v.readyLocked(); err != nil {
		v.mu.Unlock()
		return err
	}
	if v.state.SelectedDate == date {
		v.mu.Unlock()
		return nil
	}
	v.state.SelectedDate = date
	v.mu.Unlock()

	v.loadShowtimes(ctx)
	return nil
}

// State returns a copy of the current state.
func (v *MovieDetailView) State() MovieDetailState {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	s.Cities = cloneSlice(v.state.Cities)
	s.TheatersInCity = cloneSlice(v.state.TheatersInCity)
	s.Showtimes = cloneSlice(v.state.Showtimes)
	s.Dates = cloneSlice(v.state.Dates)
	return s
}

// Groups returns the current showtimes grouped by cinema.
func (v *MovieDetailView) Groups() []CinemaShowtimes {
	v.mu.Lock()
	defer v.mu.Unlock()
	return GroupShowtimes(v.state.Showtimes)
}

// SelectedCinemaName resolves the selected cinema against the theaters of the city.
func (v *MovieDetailView) SelectedCinemaName() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.SelectedCinema == "" {
		return ""
	}
	for _, t := range v.state.TheatersInCity {
		if t.ID == v.state.SelectedCinema {
			return t.Name
		}
	}
	return ""
}

func (v *MovieDetailView) readyLocked() error {
	switch v.state.Status {
	case ViewNotFound:
		return ErrMovieNotFound
	case ViewReady:
		return nil
	default:
		return ErrViewNotLoaded
	}
}

func (v *MovieDetailView) markNotFound() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = MovieDetailState{Status: ViewNotFound}
}

// loadTheaters fetches the theaters of city. Failures are logged and leave an
// empty list; a selected cinema that is not in the city is cleared.
func (v *MovieDetailView) loadTheaters(ctx context.Context, city string) {
	v.mu.Lock()
	v.theaterSeq++
	seq := v.theaterSeq
	if city == "" {
		v.state.TheatersInCity = []*Cinema{}
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	theaters, err := v.uc.cinemas.ListByCity(ctx, city, PageQuery{})

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.theaterSeq {
		v.uc.log.Debugf("discarding stale theaters of %s", city)
		return
	}
	if err != nil {
		v.uc.log.Warnf("failed to load theaters for %s: %v", city, err)
		v.state.TheatersInCity = []*Cinema{}
		return
	}
	if theaters == nil {
		theaters = []*Cinema{}
	}
	v.state.TheatersInCity = theaters
	if v.state.SelectedCinema != "" && !hasCinema(theaters, v.state.SelectedCinema) {
		v.state.SelectedCinema = ""
	}
}

// loadShowtimes fetches showtimes for the current selection. It is skipped
// while city or date is unset. Failures are logged and leave an empty list.
func (v *MovieDetailView) loadShowtimes(ctx context.Context) {
	v.mu.Lock()
	v.showtimeSeq++
	seq := v.showtimeSeq
	filter := ShowtimeFilter{
		MovieID:  v.movieID,
		City:     v.state.SelectedCity,
		Date:     v.state.SelectedDate,
		CinemaID: v.state.SelectedCinema,
	}
	if filter.MovieID == "" || filter.City == "" || filter.Date == "" {
		v.state.LoadingShowtimes = false
		v.mu.Unlock()
		return
	}
	v.state.LoadingShowtimes = true
	v.state.Showtimes = []*Showtime{}
	v.mu.Unlock()

	showtimes, err := v.uc.showtimes.ListShowtimes(ctx, filter)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.showtimeSeq {
		v.uc.log.Debugf("discarding stale showtimes for %+v", filter)
		return
	}
	v.state.LoadingShowtimes = false
	if err != nil {
		v.uc.log.Warnf("failed to load showtimes for movie %s: %v", v.movieID, err)
		v.state.Showtimes = []*Showtime{}
		return
	}
	if showtimes == nil {
		showtimes = []*Showtime{}
	}
	v.state.Showtimes = showtimes
}

// GroupShowtimes groups showtimes by cinema. Groups keep the order in which
// each cinema first appears; showtimes inside a group are sorted by start time.
func GroupShowtimes(showtimes []*Showtime) []CinemaShowtimes {
	groups := make([]CinemaShowtimes, 0)
	index := make(map[string]int)
	for _, st := range showtimes {
		if st == nil {
			continue
		}
		i, ok := index[st.CinemaID]
		if !ok {
			i = len(groups)
			index[st.CinemaID] = i
			groups = append(groups, CinemaShowtimes{
				CinemaID:      st.CinemaID,
				CinemaName:    st.CinemaName,
				CinemaAddress: st.CinemaAddress,
			})
		}
		groups[i].Showtimes = append(groups[i].Showtimes, st)
	}
	for i := range groups {
		list := groups[i].Showtimes
		sort.SliceStable(list, func(a, b int) bool {
			return list[a].StartTime.Before(list[b].StartTime)
		})
	}
	return groups
}

func initialCity(cities []string, hint string) string {
	if hint != "" {
		for _, c := range cities {
			if c == hint {
				return hint
			}
		}
	}
	if len(cities) > 0 {
		return cities[0]
	}
	return ""
}

func initialDate(dates []string, hint string) string {
	if hint != "" {
		hint = NormalizeDate(hint)
		for _, d := range dates {
			if d == hint {
				return hint
			}
		}
	}
	if len(dates) > 0 {
		return dates[0]
	}
	return ""
}

func hasCinema(cinemas []*Cinema, id string) bool {
	for _, c := range cinemas {
		if c != nil && c.ID == id {
			return true
		}
	}
	return false
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
