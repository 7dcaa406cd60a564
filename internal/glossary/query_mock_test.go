package glossary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/glossary/internal/glossary"
	mock_glossary "github.com/at-ishikawa/glossary/internal/mocks/glossary"
)

func TestQueryEngine_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_glossary.NewMockRepository(ctrl)
	repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection reset")).Times(3)

	engine := glossary.NewQueryEngine(repo)
	_, err := engine.List(context.Background(), 1, 10)
	assert.ErrorContains(t, err, "connection reset")
	_, err = engine.Search(context.Background(), "x", "")
	assert.ErrorContains(t, err, "connection reset")
	_, err = engine.ByCategory(context.Background(), "x")
	assert.ErrorContains(t, err, "connection reset")
}

func TestSeed_StopsOnRepositoryFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_glossary.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(glossary.Entry{}, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(glossary.Entry{}, glossary.ErrAlreadyExists),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(glossary.Entry{}, errors.New("disk full")),
	)

	created, err := glossary.Seed(context.Background(), repo, []glossary.Entry{
		{Term: "A", Definition: "a", Category: "c"},
		{Term: "B", Definition: "b", Category: "c"},
		{Term: "C", Definition: "c", Category: "c"},
		{Term: "D", Definition: "d", Category: "c"},
	})
	assert.ErrorContains(t, err, "disk full")
	assert.ErrorContains(t, err, "repo.Create(C)")
	assert.Equal(t, 1, created)
}
