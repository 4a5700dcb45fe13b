package usecase

import (
	"context"
	"strings"

	"github.com/anvayahq/anvaya-crm/internal/entity"
)

// TagUseCase is the thinnest facade slice: tags carry no references of
// their own, so creation only needs presence checks.
type TagUseCase struct {
	TagRepo TagRepositoryInterface
}

func NewTagUseCase(tagRepo TagRepositoryInterface) *TagUseCase {
	return &TagUseCase{TagRepo: tagRepo}
}

func (uc *TagUseCase) List(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := uc.TagRepo.FindAll(ctx)
	if err != nil {
		return nil, errStore("list tags", err)
	}
	return tags, nil
}

func (uc *TagUseCase) Create(ctx context.Context, input CreateTagInput) (*entity.Tag, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errMissingField("name")
	}

	tag, err := entity.NewTag(input.Name)
	if err != nil {
		return nil, errInvalidValue("tag", err.Error())
	}

	if err := uc.TagRepo.Create(ctx, tag); err != nil {
		return nil, errStore("create tag", err)
	}

	return tag, nil
}
