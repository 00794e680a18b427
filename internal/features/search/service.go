package search

import (
	"context"

	"stitchmes/internal/reportquery"
)

type SearchService interface {
	Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
}

type SearchServiceImpl struct {
	Repo SearchRepository
}

func NewSearchService(repo SearchRepository) SearchService {
	return &SearchServiceImpl{Repo: repo}
}

func (s *SearchServiceImpl) Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return s.Repo.ListPage(ctx, q)
}

func (s *SearchServiceImpl) ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return s.Repo.ListAll(ctx, q)
}
