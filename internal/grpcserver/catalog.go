package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dotflik/dotflik/internal/models"
	"github.com/dotflik/dotflik/internal/services"
)

// CatalogServiceName is the fully qualified gRPC service name.
const CatalogServiceName = "dotflik.v1.Catalog"

// ListRequest asks for one page of a listing.
type ListRequest struct {
	PageSize  int32  `json:"page_size"`
	PageToken string `json:"page_token"`
}

func (r *ListRequest) GetPageSize() int32 {
	if r == nil {
		return 0
	}
	return r.PageSize
}

func (r *ListRequest) GetPageToken() string {
	if r == nil {
		return ""
	}
	return r.PageToken
}

// ListMoviesResponse is one page of movies.
type ListMoviesResponse struct {
	Movies        []models.Movie `json:"movies"`
	NextPageToken string         `json:"next_page_token"`
	PageSize      int32          `json:"page_size"`
}

// ListStarsResponse is one page of stars.
type ListStarsResponse struct {
	Stars         []models.Star `json:"stars"`
	NextPageToken string        `json:"next_page_token"`
	PageSize      int32         `json:"page_size"`
}

// GetMovieRequest names a movie by id.
type GetMovieRequest struct {
	ID string `json:"id"`
}

// CatalogServer serves the catalog over gRPC.
type CatalogServer interface {
	ListMovies(context.Context, *ListRequest) (*ListMoviesResponse, error)
	ListStars(context.Context, *ListRequest) (*ListStarsResponse, error)
	GetMovie(context.Context, *GetMovieRequest) (*models.Movie, error)
}

// Catalog implements CatalogServer on top of the services.
type Catalog struct {
	movies *services.MovieService
	stars  *services.StarService
}

// NewCatalog creates the gRPC catalog service.
func NewCatalog(movies *services.MovieService, stars *services.StarService) *Catalog {
	return &Catalog{movies: movies, stars: stars}
}

func (s *Catalog) ListMovies(ctx context.Context, req *ListRequest) (*ListMoviesResponse, error) {
	page, err := s.movies.List(ctx, int(req.GetPageSize()), req.GetPageToken())
	if err != nil {
		return nil, err
	}
	return &ListMoviesResponse{
		Movies:        page.Items,
		NextPageToken: page.NextPageToken,
		PageSize:      int32(page.PageSize),
	}, nil
}

func (s *Catalog) ListStars(ctx context.Context, req *ListRequest) (*ListStarsResponse, error) {
	page, err := s.stars.List(ctx, int(req.GetPageSize()), req.GetPageToken())
	if err != nil {
		return nil, err
	}
	return &ListStarsResponse{
		Stars:         page.Items,
		NextPageToken: page.NextPageToken,
		PageSize:      int32(page.PageSize),
	}, nil
}

func (s *Catalog) GetMovie(ctx context.Context, req *GetMovieRequest) (*models.Movie, error) {
	return s.movies.GetByID(ctx, req.ID)
}

// unaryMethod adapts a typed handler to grpc.MethodDesc, running the
// server's interceptor chain the way generated code does.
func unaryMethod[Req any, Resp any](name string, call func(CatalogServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + CatalogServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CatalogServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CatalogServiceDesc describes dotflik.v1.Catalog.
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("ListMovies", CatalogServer.ListMovies),
		unaryMethod("ListStars", CatalogServer.ListStars),
		unaryMethod("GetMovie", CatalogServer.GetMovie),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dotflik/v1/catalog",
}
