package implementation

import (
	"context"
	"errors"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/mapper"
	"ai-course-be/internal/model"
	"ai-course-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CourseContentMapper
}

func NewCourseContentRepository(db *gorm.DB) contract.CourseContentRepository {
	return &CourseContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCourseContentMapper(),
	}
}

// CreateModuleGraph walks the module tree level by level. Children are
// collected into flat slices so each level is a single bulk insert.
func (r *CourseContentRepositoryImpl) CreateModuleGraph(ctx context.Context, courseId uuid.UUID, modules []*entity.Module) error {
	if len(modules) == 0 {
		return nil
	}

	db := r.db.WithContext(ctx)

	moduleModels := make([]*model.Module, 0, len(modules))
	var blockModels []*model.LearnBlock
	var practiceModels []*model.Practice
	var questionModels []*model.Question
	var optionModels []*model.QuestionOption
	var keywordModels []*model.QuestionKeyword

	// IDs are assigned here rather than relying on database defaults so
	// child rows can reference their parents within the same batch.
	for _, mod := range modules {
		if mod.Id == uuid.Nil {
			mod.Id = uuid.New()
		}
		mod.CourseId = courseId
		moduleModels = append(moduleModels, r.mapper.ModuleToModel(mod))

		for _, lb := range mod.LearnBlocks {
			if lb.Id == uuid.Nil {
				lb.Id = uuid.New()
			}
			lb.ModuleId = mod.Id
			blockModels = append(blockModels, r.mapper.LearnBlockToModel(lb))
		}

		for _, p := range mod.Practices {
			if p.Id == uuid.Nil {
				p.Id = uuid.New()
			}
			p.ModuleId = mod.Id
			practiceModels = append(practiceModels, r.mapper.PracticeToModel(p))

			for _, q := range p.Questions {
				if q.Id == uuid.Nil {
					q.Id = uuid.New()
				}
				q.PracticeId = p.Id
				questionModels = append(questionModels, r.mapper.QuestionToModel(q))

				for _, o := range q.Options {
					if o.Id == uuid.Nil {
						o.Id = uuid.New()
					}
					o.QuestionId = q.Id
					optionModels = append(optionModels, r.mapper.OptionToModel(o))
				}
				for _, kw := range q.Keywords {
					keywordModels = append(keywordModels, &model.QuestionKeyword{
						Id:         uuid.New(),
						QuestionId: q.Id,
						Keyword:    kw,
					})
				}
			}
		}
	}

	if err := db.Create(moduleModels).Error; err != nil {
		return err
	}
	if len(blockModels) > 0 {
		if err := db.Create(blockModels).Error; err != nil {
			return err
		}
	}
	if len(practiceModels) > 0 {
		if err := db.Create(practiceModels).Error; err != nil {
			return err
		}
	}
	if len(questionModels) > 0 {
		if err := db.Create(questionModels).Error; err != nil {
			return err
		}
	}
	if len(optionModels) > 0 {
		if err := db.Create(optionModels).Error; err != nil {
			return err
		}
	}
	if len(keywordModels) > 0 {
		if err := db.Create(keywordModels).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *CourseContentRepositoryImpl) FindActiveLearnBlocks(ctx context.Context, courseId uuid.UUID) ([]*entity.LearnBlock, error) {
	var models []*model.LearnBlock
	err := r.db.WithContext(ctx).
		Joins("JOIN modules ON modules.id = learn_blocks.module_id").
		Where("modules.course_id = ?", courseId).
		Where("modules.deleted_at IS NULL").
		Where("learn_blocks.deleted_at IS NULL").
		Order("modules.position ASC, learn_blocks.position ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	blocks := make([]*entity.LearnBlock, len(models))
	for i, m := range models {
		b := r.mapper.LearnBlockToEntity(m)
		b.CourseId = courseId
		blocks[i] = b
	}
	return blocks, nil
}

func (r *CourseContentRepositoryImpl) FindLearnBlockScope(ctx context.Context, learnBlockId uuid.UUID) (*entity.LearnBlockScope, error) {
	type row struct {
		LearnBlockId uuid.UUID
		ModuleId     uuid.UUID
		CourseId     uuid.UUID
		CourseStatus string
	}
	var res row

	err := r.db.WithContext(ctx).
		Table("learn_blocks").
		Select("learn_blocks.id AS learn_block_id, modules.id AS module_id, courses.id AS course_id, courses.status AS course_status").
		Joins("JOIN modules ON modules.id = learn_blocks.module_id").
		Joins("JOIN courses ON courses.id = modules.course_id").
		Where("learn_blocks.id = ?", learnBlockId).
		Where("learn_blocks.deleted_at IS NULL").
		Where("modules.deleted_at IS NULL").
		Where("courses.deleted_at IS NULL").
		Take(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity.LearnBlockScope{
		LearnBlockId: res.LearnBlockId,
		ModuleId:     res.ModuleId,
		CourseId:     res.CourseId,
		CourseStatus: entity.CourseStatus(res.CourseStatus),
	}, nil
}

func (r *CourseContentRepositoryImpl) CountModules(ctx context.Context, courseId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Module{}).
		Where("course_id = ?", courseId).
		Count(&count).Error
	return count, err
}
