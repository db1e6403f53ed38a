package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
)

var _ = new(context.Context)

const (
	OperationMovieServiceListMovies       = "/api.storefront.v1.MovieService/ListMovies"
	OperationMovieServiceListNowShowing   = "/api.storefront.v1.MovieService/ListNowShowing"
	OperationMovieServiceListComingSoon   = "/api.storefront.v1.MovieService/ListComingSoon"
	OperationMovieServiceSearchMovies     = "/api.storefront.v1.MovieService/SearchMovies"
	OperationMovieServiceListGenres       = "/api.storefront.v1.MovieService/ListGenres"
	OperationMovieServiceListLatestMovies = "/api.storefront.v1.MovieService/ListLatestMovies"
	OperationMovieServiceGetMovie         = "/api.storefront.v1.MovieService/GetMovie"
	OperationMovieServiceGetMovieDetail   = "/api.storefront.v1.MovieService/GetMovieDetail"
)

type MovieServiceHTTPServer interface {
	ListMovies(context.Context, *PageRequest) (*ListMoviesReply, error)
	ListNowShowing(context.Context, *PageRequest) (*MoviePageReply, error)
	ListComingSoon(context.Context, *PageRequest) (*MoviePageReply, error)
	SearchMovies(context.Context, *SearchMoviesRequest) (*ListMoviesReply, error)
	ListGenres(context.Context, *ListGenresRequest) (*ListGenresReply, error)
	ListLatestMovies(context.Context, *ListLatestMoviesRequest) (*ListMoviesReply, error)
	GetMovie(context.Context, *GetMovieRequest) (*Movie, error)
	GetMovieDetail(context.Context, *GetMovieDetailRequest) (*MovieDetailReply, error)
}

func RegisterMovieServiceHTTPServer(s *http.Server, srv MovieServiceHTTPServer) {
	r := s.Route("/")
	r.GET("/v1/movies", _MovieService_ListMovies0_HTTP_Handler(srv))
	r.GET("/v1/movies/now-showing", _MovieService_ListNowShowing0_HTTP_Handler(srv))
	r.GET("/v1/movies/coming-soon", _MovieService_ListComingSoon0_HTTP_Handler(srv))
	r.GET("/v1/movies/search", _MovieService_SearchMovies0_HTTP_Handler(srv))
	r.GET("/v1/movies/genres", _MovieService_ListGenres0_HTTP_Handler(srv))
	r.GET("/v1/movies/latest", _MovieService_ListLatestMovies0_HTTP_Handler(srv))
	r.GET("/v1/movies/{id}", _MovieService_GetMovie0_HTTP_Handler(srv))
	r.GET("/v1/movies/{id}/detail", _MovieService_GetMovieDetail0_HTTP_Handler(srv))
}

func _MovieService_ListMovies0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in PageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceListMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListMovies(ctx, req.(*PageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListMoviesReply)
		return ctx.Result(200, reply)
	}
}

func _MovieService_ListNowShowing0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in PageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceListNowShowing)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListNowShowing(ctx, req.(*PageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*MoviePageReply)
		return ctx.Result(200, reply)
	}
}

func _MovieService_ListComingSoon0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in PageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceListComingSoon)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListComingSoon(ctx, req.(*PageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*MoviePageReply)
		return ctx.Result(200, reply)
	}
}

func _MovieService_SearchMovies0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SearchMoviesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceSearchMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SearchMovies(ctx, req.(*SearchMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListMoviesReply)
		return ctx.Result(200, reply)
	}
}

func _MovieService_ListGenres0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListGenresRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceListGenres)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListGenres(ctx, req.(*ListGenresRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListGenresReply)
		return ctx.Result(200, reply)
	}
}

func _MovieService_ListLatestMovies0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListLatestMoviesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceListLatestMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListLatestMovies(ctx, req.(*ListLatestMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListMoviesReply)
		return ctx.Result(200, reply)
	}
}

func _MovieService_GetMovie0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetMovieRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceGetMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetMovie(ctx, req.(*GetMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Movie)
		return ctx.Result(200, reply)
	}
}

func _MovieService_GetMovieDetail0_HTTP_Handler(srv MovieServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetMovieDetailRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationMovieServiceGetMovieDetail)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetMovieDetail(ctx, req.(*GetMovieDetailRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*MovieDetailReply)
		return ctx.Result(200, reply)
	}
}

const (
	OperationCinemaServiceListCinemas       = "/api.storefront.v1.CinemaService/ListCinemas"
	OperationCinemaServiceListNearbyCinemas = "/api.storefront.v1.CinemaService/ListNearbyCinemas"
	OperationCinemaServiceSearchCinemas     = "/api.storefront.v1.CinemaService/SearchCinemas"
	OperationCinemaServiceListCities        = "/api.storefront.v1.CinemaService/ListCities"
	OperationCinemaServiceListCinemasByCity = "/api.storefront.v1.CinemaService/ListCinemasByCity"
	OperationCinemaServiceGetCinema         = "/api.storefront.v1.CinemaService/GetCinema"
	OperationCinemaServiceListRooms         = "/api.storefront.v1.CinemaService/ListRooms"
	OperationCinemaServiceGetRoom           = "/api.storefront.v1.CinemaService/GetRoom"
)

type CinemaServiceHTTPServer interface {
	ListCinemas(context.Context, *PageRequest) (*CinemaPageReply, error)
	ListNearbyCinemas(context.Context, *NearbyCinemasRequest) (*ListCinemasReply, error)
	SearchCinemas(context.Context, *SearchCinemasRequest) (*ListCinemasReply, error)
	ListCities(context.Context, *ListCitiesRequest) (*ListCitiesReply, error)
	ListCinemasByCity(context.Context, *ListCinemasByCityRequest) (*ListCinemasReply, error)
	GetCinema(context.Context, *GetCinemaRequest) (*Cinema, error)
	ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsReply, error)
	GetRoom(context.Context, *GetRoomRequest) (*Room, error)
}

func RegisterCinemaServiceHTTPServer(s *http.Server, srv CinemaServiceHTTPServer) {
	r := s.Route("/")
	r.GET("/v1/cinemas", _CinemaService_ListCinemas0_HTTP_Handler(srv))
	r.GET("/v1/cinemas/nearby", _CinemaService_ListNearbyCinemas0_HTTP_Handler(srv))
	r.GET("/v1/cinemas/search", _CinemaService_SearchCinemas0_HTTP_Handler(srv))
	r.GET("/v1/cinemas/cities", _CinemaService_ListCities0_HTTP_Handler(srv))
	r.GET("/v1/cinemas/by-city/{city}", _CinemaService_ListCinemasByCity0_HTTP_Handler(srv))
	r.GET("/v1/cinemas/{id}", _CinemaService_GetCinema0_HTTP_Handler(srv))
	r.GET("/v1/cinemas/{id}/rooms", _CinemaService_ListRooms0_HTTP_Handler(srv))
	r.GET("/v1/rooms/{id}", _CinemaService_GetRoom0_HTTP_Handler(srv))
}

func _CinemaService_ListCinemas0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in PageRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceListCinemas)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListCinemas(ctx, req.(*PageRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*CinemaPageReply)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_ListNearbyCinemas0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in NearbyCinemasRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceListNearbyCinemas)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListNearbyCinemas(ctx, req.(*NearbyCinemasRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListCinemasReply)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_SearchCinemas0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SearchCinemasRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceSearchCinemas)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SearchCinemas(ctx, req.(*SearchCinemasRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListCinemasReply)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_ListCities0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListCitiesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceListCities)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListCities(ctx, req.(*ListCitiesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListCitiesReply)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_ListCinemasByCity0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListCinemasByCityRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceListCinemasByCity)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListCinemasByCity(ctx, req.(*ListCinemasByCityRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListCinemasReply)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_GetCinema0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetCinemaRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceGetCinema)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetCinema(ctx, req.(*GetCinemaRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Cinema)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_ListRooms0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListRoomsRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceListRooms)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListRooms(ctx, req.(*ListRoomsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListRoomsReply)
		return ctx.Result(200, reply)
	}
}

func _CinemaService_GetRoom0_HTTP_Handler(srv CinemaServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetRoomRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationCinemaServiceGetRoom)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetRoom(ctx, req.(*GetRoomRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Room)
		return ctx.Result(200, reply)
	}
}

const (
	OperationBookingServiceListShowtimes           = "/api.storefront.v1.BookingService/ListShowtimes"
	OperationBookingServiceGetShowtime             = "/api.storefront.v1.BookingService/GetShowtime"
	OperationBookingServiceGetSeatMap              = "/api.storefront.v1.BookingService/GetSeatMap"
	OperationBookingServiceHoldSeats               = "/api.storefront.v1.BookingService/HoldSeats"
	OperationBookingServiceReleaseSeats            = "/api.storefront.v1.BookingService/ReleaseSeats"
	OperationBookingServiceExtendSeatHold          = "/api.storefront.v1.BookingService/ExtendSeatHold"
	OperationBookingServiceCreateBooking           = "/api.storefront.v1.BookingService/CreateBooking"
	OperationBookingServiceGetBooking              = "/api.storefront.v1.BookingService/GetBooking"
	OperationBookingServiceCreatePayment           = "/api.storefront.v1.BookingService/CreatePayment"
	OperationBookingServiceConfirmPayment          = "/api.storefront.v1.BookingService/ConfirmPayment"
	OperationBookingServiceListConcessions         = "/api.storefront.v1.BookingService/ListConcessions"
	OperationBookingServiceListConcessionsByCinema = "/api.storefront.v1.BookingService/ListConcessionsByCinema"
	OperationBookingServiceGetConcession           = "/api.storefront.v1.BookingService/GetConcession"
)

type BookingServiceHTTPServer interface {
	ListShowtimes(context.Context, *ListShowtimesRequest) (*ListShowtimesReply, error)
	GetShowtime(context.Context, *GetShowtimeRequest) (*Showtime, error)
	GetSeatMap(context.Context, *GetSeatMapRequest) (*SeatMapReply, error)
	HoldSeats(context.Context, *HoldSeatsRequest) (*SeatHoldReply, error)
	ReleaseSeats(context.Context, *SeatSelectionRequest) (*SeatHoldReply, error)
	ExtendSeatHold(context.Context, *SeatSelectionRequest) (*SeatHoldReply, error)
	CreateBooking(context.Context, *CreateBookingRequest) (*CreateBookingReply, error)
	GetBooking(context.Context, *GetBookingRequest) (*Booking, error)
	CreatePayment(context.Context, *CreatePaymentRequest) (*PaymentUrlReply, error)
	ConfirmPayment(context.Context, *ConfirmPaymentRequest) (*PaymentResultReply, error)
	ListConcessions(context.Context, *ListConcessionsRequest) (*ListConcessionsReply, error)
	ListConcessionsByCinema(context.Context, *ListConcessionsByCinemaRequest) (*ListConcessionsReply, error)
	GetConcession(context.Context, *GetConcessionRequest) (*Concession, error)
}

func RegisterBookingServiceHTTPServer(s *http.Server, srv BookingServiceHTTPServer) {
	r := s.Route("/")
	r.GET("/v1/showtimes", _BookingService_ListShowtimes0_HTTP_Handler(srv))
	r.GET("/v1/showtimes/{id}", _BookingService_GetShowtime0_HTTP_Handler(srv))
	r.GET("/v1/showtimes/{id}/seats", _BookingService_GetSeatMap0_HTTP_Handler(srv))
	r.POST("/v1/seats/hold", _BookingService_HoldSeats0_HTTP_Handler(srv))
	r.DELETE("/v1/seats/release", _BookingService_ReleaseSeats0_HTTP_Handler(srv))
	r.POST("/v1/seats/extend-hold", _BookingService_ExtendSeatHold0_HTTP_Handler(srv))
	r.POST("/v1/bookings", _BookingService_CreateBooking0_HTTP_Handler(srv))
	r.GET("/v1/bookings/{code}", _BookingService_GetBooking0_HTTP_Handler(srv))
	r.POST("/v1/payments/vnpay", _BookingService_CreatePayment0_HTTP_Handler(srv))
	r.GET("/v1/payments/vnpay/callback", _BookingService_ConfirmPayment0_HTTP_Handler(srv))
	r.GET("/v1/concessions", _BookingService_ListConcessions0_HTTP_Handler(srv))
	r.GET("/v1/concessions/by-cinema/{id}", _BookingService_ListConcessionsByCinema0_HTTP_Handler(srv))
	r.GET("/v1/concessions/{id}", _BookingService_GetConcession0_HTTP_Handler(srv))
}

func _BookingService_ListShowtimes0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListShowtimesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceListShowtimes)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListShowtimes(ctx, req.(*ListShowtimesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListShowtimesReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_GetShowtime0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetShowtimeRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceGetShowtime)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetShowtime(ctx, req.(*GetShowtimeRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Showtime)
		return ctx.Result(200, reply)
	}
}

func _BookingService_GetSeatMap0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetSeatMapRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceGetSeatMap)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetSeatMap(ctx, req.(*GetSeatMapRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SeatMapReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_HoldSeats0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HoldSeatsRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceHoldSeats)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.HoldSeats(ctx, req.(*HoldSeatsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SeatHoldReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_ReleaseSeats0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SeatSelectionRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceReleaseSeats)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ReleaseSeats(ctx, req.(*SeatSelectionRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SeatHoldReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_ExtendSeatHold0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in SeatSelectionRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceExtendSeatHold)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ExtendSeatHold(ctx, req.(*SeatSelectionRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SeatHoldReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_CreateBooking0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in CreateBookingRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceCreateBooking)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateBooking(ctx, req.(*CreateBookingRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*CreateBookingReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_GetBooking0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetBookingRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceGetBooking)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetBooking(ctx, req.(*GetBookingRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Booking)
		return ctx.Result(200, reply)
	}
}

func _BookingService_CreatePayment0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in CreatePaymentRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceCreatePayment)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreatePayment(ctx, req.(*CreatePaymentRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*PaymentUrlReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_ConfirmPayment0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		in := ConfirmPaymentRequest{Params: ctx.Query()}
		http.SetOperation(ctx, OperationBookingServiceConfirmPayment)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ConfirmPayment(ctx, req.(*ConfirmPaymentRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*PaymentResultReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_ListConcessions0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListConcessionsRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceListConcessions)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListConcessions(ctx, req.(*ListConcessionsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListConcessionsReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_ListConcessionsByCinema0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ListConcessionsByCinemaRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceListConcessionsByCinema)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListConcessionsByCinema(ctx, req.(*ListConcessionsByCinemaRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ListConcessionsReply)
		return ctx.Result(200, reply)
	}
}

func _BookingService_GetConcession0_HTTP_Handler(srv BookingServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetConcessionRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationBookingServiceGetConcession)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetConcession(ctx, req.(*GetConcessionRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*Concession)
		return ctx.Result(200, reply)
	}
}

const (
	OperationHealthServiceCheck = "/api.storefront.v1.HealthService/Check"
)

type HealthServiceHTTPServer interface {
	Check(context.Context, *HealthRequest) (*HealthReply, error)
}

func RegisterHealthServiceHTTPServer(s *http.Server, srv HealthServiceHTTPServer) {
	r := s.Route("/")
	r.GET("/v1/health", _HealthService_Check0_HTTP_Handler(srv))
}

func _HealthService_Check0_HTTP_Handler(srv HealthServiceHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HealthRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationHealthServiceCheck)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Check(ctx, req.(*HealthRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*HealthReply)
		return ctx.Result(200, reply)
	}
}
