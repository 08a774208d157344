package usecase

import (
	"context"
	"io"
	"strings"

	"content-desk/domain"
	"content-desk/port"
)

// ImportArticlesUsecase uploads a bulk article file. Only .json files
// are accepted; the remote API returns a per-record report which is
// surfaced verbatim.
type ImportArticlesUsecase struct {
	articles port.ArticleRepository
}

func NewImportArticlesUsecase(articles port.ArticleRepository) *ImportArticlesUsecase {
	return &ImportArticlesUsecase{articles: articles}
}

func (u *ImportArticlesUsecase) Execute(ctx context.Context, filename string, file io.Reader) (*domain.ImportResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		return nil, &domain.ValidationError{Field: "file", Err: "must be a .json file"}
	}
	return u.articles.Import(ctx, filename, file)
}
