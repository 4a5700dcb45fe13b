package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anvayahq/anvaya-crm/internal/entity"
	"github.com/anvayahq/anvaya-crm/internal/usecase"
)

func TestCreateTagSuccess(t *testing.T) {
	ctx := context.Background()
	mockTagRepo := new(MockTagRepository)
	mockTagRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewTagUseCase(mockTagRepo)

	tag, err := uc.Create(ctx, usecase.CreateTagInput{Name: "  High Value  "})

	assert.NoError(t, err)
	assert.Equal(t, "High Value", tag.Name)
	assert.NotEmpty(t, tag.ID)
}

func TestCreateTagMissingName(t *testing.T) {
	ctx := context.Background()
	mockTagRepo := new(MockTagRepository)

	uc := usecase.NewTagUseCase(mockTagRepo)

	_, err := uc.Create(ctx, usecase.CreateTagInput{Name: "   "})

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeMissingField, domainErr.Code)
	mockTagRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListTags(t *testing.T) {
	ctx := context.Background()
	mockTagRepo := new(MockTagRepository)
	mockTagRepo.On("FindAll", ctx).Return([]*entity.Tag{
		{ID: "tag-1", Name: "High Value"},
		{ID: "tag-2", Name: "Follow-up"},
	}, nil)

	uc := usecase.NewTagUseCase(mockTagRepo)

	tags, err := uc.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, tags, 2)
}
